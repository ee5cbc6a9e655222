package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context) (models.SiteSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery()
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		settings       models.SiteSettings
		services, stat []byte
	)
	err = s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(
			&settings.Logo,
			&settings.HeroTitle,
			&settings.HeroTagline,
			&settings.AboutTitle,
			&settings.AboutText1,
			&settings.AboutText2,
			&services,
			&stat,
			&settings.InstagramURL,
			&settings.ContactEmail,
			&settings.Version,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.SiteSettings{}, ErrSettingsNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Get").Msg("failed to query site settings")
		return models.SiteSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(services, &settings.Services); err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: services: %w", ErrEncodingColumn, err)
	}
	if err = json.Unmarshal(stat, &settings.Stats); err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: stats: %w", ErrEncodingColumn, err)
	}

	return settings, nil
}

// Replace first tries to update the existing row. When no row exists yet and
// the caller did not pin a version, the row is inserted with version 1.
func (s *settingsRepository) Replace(ctx context.Context, settings models.SiteSettings, expectedVersion int64) (models.SiteSettings, error) {
	log := logger.FromContext(ctx).With().Str("func", "settingsRepository.Replace").Logger()

	services, err := json.Marshal(nonNil(settings.Services))
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: services: %w", ErrEncodingColumn, err)
	}
	stats, err := json.Marshal(nonNil(settings.Stats))
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: stats: %w", ErrEncodingColumn, err)
	}

	query, args, err := buildReplaceSettingsQuery(settings, services, stats, expectedVersion)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	err = s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&version)
	})
	switch {
	case err == nil:
		settings.Version = version
		return settings, nil
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).Msg("failed to update site settings")
		return models.SiteSettings{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	case expectedVersion > 0:
		log.Warn().Int64("expected_version", expectedVersion).Msg("site settings version conflict")
		return models.SiteSettings{}, ErrVersionConflict
	}

	// nothing stored yet
	query, args, err = buildInsertSettingsQuery(settings, services, stats)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&version)
	})
	if errors.Is(err, sql.ErrNoRows) {
		// a concurrent first write won
		return models.SiteSettings{}, ErrVersionConflict
	}
	if err != nil {
		log.Err(err).Msg("failed to insert site settings")
		return models.SiteSettings{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	settings.Version = version
	return settings, nil
}

// nonNil keeps JSONB columns as arrays rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
