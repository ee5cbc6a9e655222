package service

import (
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
)

type Services struct {
	AuthService     AuthService
	ProjectService  ProjectService
	SettingsService SettingsService
	ReviewService   ReviewService
	StatsService    StatsService
	MediaService    MediaService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.AttemptStorage, cfg.App, cfg.Limits, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewContentValidator()
	cache := NewContentCache(cfg.Cache)

	return &Services{
		AuthService:     authService,
		ProjectService:  NewProjectService(storages.ProjectRepository, storages.MediaStorage, validator, cache, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, storages.MediaStorage, validator, cache, logger),
		ReviewService:   NewReviewService(storages.ReviewRepository, validator, cache, logger),
		StatsService:    NewStatsService(storages.ProjectRepository, storages.SettingsRepository, logger),
		MediaService:    NewMediaService(storages.MediaStorage, logger),
		AppInfoService:  appInfoService,
	}, nil
}
