// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/models"
)

// MediaSweeper removes blobs that no project and no saved settings document
// refer to. Such orphans appear when a logo is uploaded but the settings are
// never saved, or when a delete could not remove the media of a project.
//
// Blobs younger than the grace period are never touched: a project's media
// is stored before its row, and a logo is stored before the document that
// references it.
type MediaSweeper struct {
	projects store.ProjectRepository
	settings store.SettingsRepository
	media    store.MediaStorage

	interval time.Duration
	grace    time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewMediaSweeper(
	projects store.ProjectRepository,
	settings store.SettingsRepository,
	media store.MediaStorage,
	cfg config.Workers,
	logger *logger.Logger,
) *MediaSweeper {
	return &MediaSweeper{
		projects: projects,
		settings: settings,
		media:    media,
		interval: cfg.MediaSweepInterval,
		grace:    cfg.MediaSweepGrace,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. Failed sweeps are
// logged and retried on the next tick.
func (m *MediaSweeper) Run(ctx context.Context) error {
	log := m.logger.With().Str("worker", "media_sweeper").Logger()
	log.Info().Dur("interval", m.interval).Dur("grace", m.grace).Msg("media sweeper started")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("media sweeper stopped")
			return nil
		case <-ticker.C:
			removed, err := m.Sweep(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Err(err).Msg("media sweep failed")
				continue
			}
			if removed > 0 {
				log.Info().Int("removed", removed).Msg("orphaned media removed")
			}
		}
	}
}

// Sweep performs one pass and returns the number of removed blobs. Nothing
// is removed when the set of referenced keys cannot be read completely.
func (m *MediaSweeper) Sweep(ctx context.Context) (int, error) {
	blobs, err := m.media.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing media: %w", err)
	}
	if len(blobs) == 0 {
		return 0, nil
	}

	referenced, err := m.referencedKeys(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := m.now().Add(-m.grace)
	removed := 0
	for _, blob := range blobs {
		if _, ok := referenced[blob.Key]; ok {
			continue
		}
		if blob.ModifiedAt.After(cutoff) {
			continue
		}
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		if err = m.media.Delete(ctx, blob.Key); err != nil {
			m.logger.Err(err).Str("key", blob.Key).Msg("failed to remove orphaned media")
			continue
		}
		removed++
	}

	return removed, nil
}

func (m *MediaSweeper) referencedKeys(ctx context.Context) (map[string]struct{}, error) {
	keys, err := m.projects.ListMediaKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing project media: %w", err)
	}

	referenced := make(map[string]struct{}, len(keys)+1)
	for _, key := range keys {
		referenced[key] = struct{}{}
	}

	settings, err := m.settings.Get(ctx)
	switch {
	case errors.Is(err, store.ErrSettingsNotFound):
	case err != nil:
		return nil, fmt.Errorf("error reading site settings: %w", err)
	default:
		if key, ok := models.MediaKeyFromURL(settings.Logo); ok {
			referenced[key] = struct{}{}
		}
	}

	return referenced, nil
}
