// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
)

type clientAdminService struct {
	adapter   adapter.ServerAdapter
	session   SessionService
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAdminService(serverAdapter adapter.ServerAdapter, session SessionService, logger *logger.Logger) AdminService {
	return &clientAdminService{
		adapter:   serverAdapter,
		session:   session,
		validator: validators.NewContentValidator(),
		logger:    logger,
	}
}

// fail logs a failed privileged call, maps it and drops the session on 401.
func (a *clientAdminService) fail(ctx context.Context, op string, err error, fallback string) error {
	a.logger.Err(err).Str("func", "clientAdminService."+op).Msg("admin action failed")
	return a.session.Invalidate(ctx, mapAdapterError(err, fallback))
}

func (a *clientAdminService) authenticated() error {
	if a.session.Current().IsZero() {
		return &ClientError{Kind: ErrNotAuthenticated, Message: app.MsgNotAuthenticated}
	}
	return nil
}

func (a *clientAdminService) CreateProject(ctx context.Context, meta models.ProjectMetadata, video models.MediaFile, thumbnail *models.MediaFile) (models.ProjectSummary, error) {
	if err := a.authenticated(); err != nil {
		return models.ProjectSummary{}, err
	}

	meta = normalizeMetadata(meta)
	if err := a.validator.Validate(ctx, meta); err != nil {
		return models.ProjectSummary{}, validationError(err)
	}

	if video.Content == nil {
		return models.ProjectSummary{}, validationError(validators.ErrVideoRequired)
	}
	video.Kind = models.MediaVideo
	if err := a.validator.Validate(ctx, video); err != nil {
		return models.ProjectSummary{}, validationError(err)
	}

	if thumbnail != nil {
		thumbnail.Kind = models.MediaThumbnail
		if err := a.validator.Validate(ctx, *thumbnail); err != nil {
			return models.ProjectSummary{}, validationError(err)
		}
	}

	project, err := a.adapter.CreateProject(ctx, meta, video, thumbnail)
	if err != nil {
		return models.ProjectSummary{}, a.fail(ctx, "CreateProject", err, app.MsgRequestFailed)
	}

	return project, nil
}

func (a *clientAdminService) UpdateProject(ctx context.Context, id string, meta models.ProjectMetadata) error {
	if err := a.authenticated(); err != nil {
		return err
	}

	meta = normalizeMetadata(meta)
	if err := a.validator.Validate(ctx, meta); err != nil {
		return validationError(err)
	}

	if err := a.adapter.UpdateProject(ctx, id, meta); err != nil {
		return a.fail(ctx, "UpdateProject", err, app.MsgRequestFailed)
	}
	return nil
}

func (a *clientAdminService) DeleteProject(ctx context.Context, id string) error {
	if err := a.authenticated(); err != nil {
		return err
	}

	if err := a.adapter.DeleteProject(ctx, id); err != nil {
		return a.fail(ctx, "DeleteProject", err, app.MsgRequestFailed)
	}
	return nil
}

func (a *clientAdminService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	if err := a.authenticated(); err != nil {
		return models.DashboardStats{}, err
	}

	stats, err := a.adapter.GetStats(ctx)
	if err != nil {
		return models.DashboardStats{}, a.fail(ctx, "GetStats", err, app.MsgRequestFailed)
	}
	return stats, nil
}

func (a *clientAdminService) UploadLogo(ctx context.Context, logo models.MediaFile) (string, error) {
	if err := a.authenticated(); err != nil {
		return "", err
	}

	logo.Kind = models.MediaLogo
	if err := a.validator.Validate(ctx, logo); err != nil {
		return "", validationError(err)
	}

	resp, err := a.adapter.UploadLogo(ctx, logo)
	if err != nil {
		return "", a.fail(ctx, "UploadLogo", err, app.MsgRequestFailed)
	}
	return resp.Logo, nil
}

func (a *clientAdminService) CurrentSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	if err := a.authenticated(); err != nil {
		return models.SiteSettings{}, err
	}

	settings, err := a.adapter.GetSiteSettings(ctx)
	if err != nil {
		return models.SiteSettings{}, a.fail(ctx, "CurrentSiteSettings", err, app.MsgRequestFailed)
	}
	return settings, nil
}

// SaveSiteSettings runs the logo upload and the document save strictly one
// after the other; the save is not attempted when the upload fails.
func (a *clientAdminService) SaveSiteSettings(ctx context.Context, s models.SiteSettings, logo *models.MediaFile) (models.SiteSettings, error) {
	if err := a.authenticated(); err != nil {
		return models.SiteSettings{}, err
	}

	s = s.Clone()

	// with a logo pending the document can never be empty, so only the
	// field rules apply
	var fields []string
	if logo != nil {
		logo.Kind = models.MediaLogo
		if err := a.validator.Validate(ctx, *logo); err != nil {
			return models.SiteSettings{}, validationError(err)
		}
		fields = []string{validators.FieldServices, validators.FieldContactEmail, validators.FieldInstagramURL}
	}
	if err := a.validator.Validate(ctx, s, fields...); err != nil {
		return models.SiteSettings{}, validationError(err)
	}

	if logo != nil {
		ref, err := a.UploadLogo(ctx, *logo)
		if err != nil {
			return models.SiteSettings{}, err
		}
		s.Logo = ref
	}

	version, err := a.adapter.UpdateSiteSettings(ctx, s)
	if err != nil {
		return models.SiteSettings{}, a.fail(ctx, "SaveSiteSettings", err, app.MsgRequestFailed)
	}

	s.Version = version
	return s, nil
}

func (a *clientAdminService) CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	if err := a.authenticated(); err != nil {
		return models.Review{}, err
	}

	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ReviewText = strings.TrimSpace(in.ReviewText)
	if err := a.validator.Validate(ctx, in); err != nil {
		return models.Review{}, validationError(err)
	}

	review, err := a.adapter.CreateReview(ctx, in)
	if err != nil {
		return models.Review{}, a.fail(ctx, "CreateReview", err, app.MsgRequestFailed)
	}
	return review, nil
}

func (a *clientAdminService) UpdateReview(ctx context.Context, id string, u models.ReviewUpdate) (models.Review, error) {
	if err := a.authenticated(); err != nil {
		return models.Review{}, err
	}

	if err := a.validator.Validate(ctx, u); err != nil {
		return models.Review{}, validationError(err)
	}

	review, err := a.adapter.UpdateReview(ctx, id, u)
	if err != nil {
		return models.Review{}, a.fail(ctx, "UpdateReview", err, app.MsgReviewNotFound)
	}
	return review, nil
}

func (a *clientAdminService) DeleteReview(ctx context.Context, id string) error {
	if err := a.authenticated(); err != nil {
		return err
	}

	if err := a.adapter.DeleteReview(ctx, id); err != nil {
		return a.fail(ctx, "DeleteReview", err, app.MsgReviewNotFound)
	}
	return nil
}
