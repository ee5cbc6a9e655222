package service

import (
	"context"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService publishes the server build info. A configured version
// wins over the one injected at build time; one of them must be set.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.Response()
	if cfg.Version != "" {
		version.Version = cfg.Version
	}
	if version.Version == "" || version.Version == models.NotAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version.Version).Msg("app info service created")
	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
