package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/models"
)

type statsService struct {
	projects store.ProjectRepository
	settings store.SettingsRepository

	now func() time.Time

	logger *logger.Logger
}

func NewStatsService(projects store.ProjectRepository, settings store.SettingsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		projects: projects,
		settings: settings,
		now:      time.Now,
		logger:   logger,
	}
}

// Dashboard reports zeros for every counter when any of them fails.
// Active services are counted from the saved document only; the built-in
// defaults count as none.
func (s *statsService) Dashboard(ctx context.Context) models.DashboardStats {
	stats, err := s.collect(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "statsService.Dashboard").Msg("error fetching admin stats")
		return models.DashboardStats{}
	}
	return stats
}

func (s *statsService) collect(ctx context.Context) (models.DashboardStats, error) {
	total, err := s.projects.Count(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("error counting projects: %w", err)
	}

	var activeServices int64
	settings, err := s.settings.Get(ctx)
	switch {
	case err == nil:
		activeServices = int64(len(settings.Services))
	case !errors.Is(err, store.ErrSettingsNotFound):
		return models.DashboardStats{}, fmt.Errorf("error reading site settings: %w", err)
	}

	since := s.now().UTC().Add(-models.RecentProjectsWindow)
	recent, err := s.projects.CountSince(ctx, since)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("error counting recent projects: %w", err)
	}

	return models.DashboardStats{
		TotalProjects:  total,
		ActiveServices: activeServices,
		RecentProjects: recent,
	}, nil
}
