package workers

import (
	"context"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A zero sweep interval
// disables the media sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.MediaSweepInterval > 0 {
		ws.workers = append(ws.workers, NewMediaSweeper(
			storages.ProjectRepository,
			storages.SettingsRepository,
			storages.MediaStorage,
			cfg,
			logger,
		))
	} else {
		logger.Info().Msg("media sweeper disabled")
	}

	return ws
}

// Run starts every worker and waits until all of them have returned. The
// first error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
