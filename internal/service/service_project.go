// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
)

type projectService struct {
	projects  store.ProjectRepository
	media     store.MediaStorage
	validator validators.Validator
	cache     *ContentCache

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewProjectService(projects store.ProjectRepository, media store.MediaStorage, validator validators.Validator, cache *ContentCache, logger *logger.Logger) ProjectService {
	return &projectService{
		projects:  projects,
		media:     media,
		validator: validator,
		cache:     cache,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Create stores the video and the optional thumbnail, then the project row.
// When the row cannot be stored the blobs saved so far are removed again.
func (p *projectService) Create(ctx context.Context, meta models.ProjectMetadata, video models.MediaFile, thumbnail *models.MediaFile) (models.Project, error) {
	log := logger.FromContext(ctx).With().Str("func", "projectService.Create").Logger()

	meta = normalizeMetadata(meta)
	if err := p.validator.Validate(ctx, meta); err != nil {
		return models.Project{}, err
	}

	if video.Content == nil {
		return models.Project{}, validators.ErrVideoRequired
	}
	video.Kind = models.MediaVideo
	if err := p.validator.Validate(ctx, video); err != nil {
		log.Warn().Err(err).Str("content_type", video.ContentType).Int64("size", video.Size).Msg("video rejected")
		return models.Project{}, err
	}

	if thumbnail != nil {
		thumbnail.Kind = models.MediaThumbnail
		if err := p.validator.Validate(ctx, *thumbnail); err != nil {
			log.Warn().Err(err).Str("content_type", thumbnail.ContentType).Int64("size", thumbnail.Size).Msg("thumbnail rejected")
			return models.Project{}, err
		}
	}

	var saved []string
	cleanup := func() {
		for _, key := range saved {
			if err := p.media.Delete(context.WithoutCancel(ctx), key); err != nil {
				log.Err(err).Str("key", key).Msg("failed to remove media after failed create")
			}
		}
	}

	storedVideo, err := p.saveMedia(ctx, video)
	if err != nil {
		return models.Project{}, err
	}
	saved = append(saved, storedVideo.Key)
	log.Info().Str("key", storedVideo.Key).Int64("size", storedVideo.Size).Msg("video stored")

	project := models.Project{
		ID:          p.ids.Generate(),
		Title:       meta.Title,
		Description: meta.Description,
		Category:    meta.Category,
		VideoKey:    storedVideo.Key,
		CreatedAt:   p.now().UTC(),
	}

	if thumbnail != nil {
		storedThumbnail, err := p.saveMedia(ctx, *thumbnail)
		if err != nil {
			cleanup()
			return models.Project{}, err
		}
		saved = append(saved, storedThumbnail.Key)
		project.ThumbnailKey = storedThumbnail.Key
	}

	if err = p.projects.Create(ctx, project); err != nil {
		log.Err(err).Msg("failed to store project")
		cleanup()
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	p.cache.Invalidate(cacheKeyProjects)

	log.Info().Str("id", project.ID).Msg("project created")
	return project, nil
}

// saveMedia streams f into the media storage. The stored size is checked
// again because the declared size comes from the client.
func (p *projectService) saveMedia(ctx context.Context, f models.MediaFile) (models.StoredMedia, error) {
	stored, err := p.media.Save(ctx, f.FileName, f.ContentType, f.Content)
	if err != nil {
		return models.StoredMedia{}, fmt.Errorf("%w: %w", ErrSavingMedia, err)
	}

	if err = validators.ValidateMedia(f.Kind, f.ContentType, stored.Size); err != nil {
		if delErr := p.media.Delete(context.WithoutCancel(ctx), stored.Key); delErr != nil {
			logger.FromContext(ctx).Err(delErr).Str("key", stored.Key).Msg("failed to remove rejected media")
		}
		return models.StoredMedia{}, err
	}

	return stored, nil
}

func (p *projectService) List(ctx context.Context) ([]models.Project, error) {
	return cachedList(p.cache, cacheKeyProjects, func() ([]models.Project, error) {
		return p.projects.List(ctx)
	})
}

func (p *projectService) Get(ctx context.Context, id string) (models.Project, error) {
	project, err := p.projects.Get(ctx, id)
	if errors.Is(err, store.ErrProjectNotFound) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("error getting project: %w", err)
	}

	return project, nil
}

// UpdateMetadata never touches the stored media.
func (p *projectService) UpdateMetadata(ctx context.Context, id string, meta models.ProjectMetadata) (models.Project, error) {
	meta = normalizeMetadata(meta)
	if err := p.validator.Validate(ctx, meta); err != nil {
		return models.Project{}, err
	}

	project, err := p.projects.UpdateMetadata(ctx, id, meta)
	if errors.Is(err, store.ErrProjectNotFound) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("error updating project: %w", err)
	}

	p.cache.Invalidate(cacheKeyProjects)
	return project, nil
}

// Delete removes the row first. Media left behind by a failed blob delete
// is collected by the media sweeper.
func (p *projectService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).With().Str("func", "projectService.Delete").Str("id", id).Logger()

	project, err := p.projects.Delete(ctx, id)
	if errors.Is(err, store.ErrProjectNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	p.cache.Invalidate(cacheKeyProjects)

	for _, key := range []string{project.VideoKey, project.ThumbnailKey} {
		if key == "" {
			continue
		}
		if err = p.media.Delete(ctx, key); err != nil {
			log.Err(err).Str("key", key).Msg("failed to remove project media")
		}
	}

	log.Info().Msg("project deleted")
	return nil
}

func normalizeMetadata(meta models.ProjectMetadata) models.ProjectMetadata {
	meta.Title = strings.TrimSpace(meta.Title)
	if strings.TrimSpace(meta.Category) == "" {
		meta.Category = models.DefaultProjectCategory
	}
	return meta
}
