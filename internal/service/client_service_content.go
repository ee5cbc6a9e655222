package service

import (
	"context"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
)

type clientContentService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientContentService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ContentService {
	return &clientContentService{
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (c *clientContentService) ListProjects(ctx context.Context) []models.ProjectSummary {
	projects, err := c.adapter.ListProjects(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "clientContentService.ListProjects").Msg("error fetching projects")
		return []models.ProjectSummary{}
	}
	return projects
}

func (c *clientContentService) GetProject(ctx context.Context, id string) (models.ProjectDetail, error) {
	project, err := c.adapter.GetProject(ctx, id)
	if err != nil {
		c.logger.Err(err).Str("func", "clientContentService.GetProject").Str("id", id).Msg("error fetching project")
		return models.ProjectDetail{}, mapAdapterError(err, app.MsgProjectNotFound)
	}
	return project, nil
}

func (c *clientContentService) GetSiteSettings(ctx context.Context) models.SiteSettings {
	settings, err := c.adapter.GetSiteSettings(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "clientContentService.GetSiteSettings").Msg("error fetching site settings, using defaults")
		return models.DefaultSiteSettings()
	}
	return settings
}

func (c *clientContentService) ListReviews(ctx context.Context) []models.Review {
	reviews, err := c.adapter.ListReviews(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "clientContentService.ListReviews").Msg("error fetching reviews")
		return []models.Review{}
	}
	return reviews
}

func (c *clientContentService) MediaURL(ref string) string {
	return c.adapter.ResolveURL(ref)
}

func (c *clientContentService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "clientContentService.ServerVersion").Msg("error fetching server version")
		return models.VersionResponse{}, mapAdapterError(err, app.MsgRequestFailed)
	}
	return version, nil
}
