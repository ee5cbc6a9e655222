package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
)

type settingsService struct {
	settings  store.SettingsRepository
	media     store.MediaStorage
	validator validators.Validator
	cache     *ContentCache

	logger *logger.Logger
}

func NewSettingsService(settings store.SettingsRepository, media store.MediaStorage, validator validators.Validator, cache *ContentCache, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings:  settings,
		media:     media,
		validator: validator,
		cache:     cache,
		logger:    logger,
	}
}

// Get falls back to [models.DefaultSiteSettings] when nothing was saved yet.
func (s *settingsService) Get(ctx context.Context) (models.SiteSettings, error) {
	if v, ok := s.cache.get(cacheKeySettings); ok {
		if settings, ok := v.(models.SiteSettings); ok {
			return settings.Clone(), nil
		}
	}

	settings, err := s.settings.Get(ctx)
	if errors.Is(err, store.ErrSettingsNotFound) {
		settings = models.DefaultSiteSettings()
	} else if err != nil {
		return models.SiteSettings{}, fmt.Errorf("error getting site settings: %w", err)
	}

	s.cache.set(cacheKeySettings, settings.Clone())
	return settings, nil
}

func (s *settingsService) Replace(ctx context.Context, settings models.SiteSettings, ifMatch int64) (models.SiteSettings, error) {
	log := logger.FromContext(ctx).With().Str("func", "settingsService.Replace").Logger()

	if err := s.validator.Validate(ctx, settings); err != nil {
		return models.SiteSettings{}, err
	}

	saved, err := s.settings.Replace(ctx, settings, ifMatch)
	if errors.Is(err, store.ErrVersionConflict) {
		log.Warn().Int64("if_match", ifMatch).Msg("stale site settings rejected")
		return models.SiteSettings{}, ErrSettingsVersionChange
	}
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("error saving site settings: %w", err)
	}

	s.cache.Invalidate(cacheKeySettings)

	log.Info().Int64("version", saved.Version).Msg("site settings saved")
	return saved, nil
}

// UploadLogo stores the blob only. The caller saves the returned reference
// with the next Replace.
func (s *settingsService) UploadLogo(ctx context.Context, logo models.MediaFile) (string, error) {
	log := logger.FromContext(ctx).With().Str("func", "settingsService.UploadLogo").Logger()

	logo.Kind = models.MediaLogo
	if err := s.validator.Validate(ctx, logo); err != nil {
		log.Warn().Err(err).Str("content_type", logo.ContentType).Int64("size", logo.Size).Msg("logo rejected")
		return "", err
	}

	stored, err := s.media.Save(ctx, logo.FileName, logo.ContentType, logo.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingMedia, err)
	}

	if err = validators.ValidateMedia(models.MediaLogo, logo.ContentType, stored.Size); err != nil {
		if delErr := s.media.Delete(context.WithoutCancel(ctx), stored.Key); delErr != nil {
			log.Err(delErr).Str("key", stored.Key).Msg("failed to remove rejected logo")
		}
		return "", err
	}

	log.Info().Str("key", stored.Key).Msg("logo stored")
	return models.MediaURL(stored.Key), nil
}
