package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every server-side repository and blob store.
type Storages struct {
	ProjectRepository  ProjectRepository
	SettingsRepository SettingsRepository
	ReviewRepository   ReviewRepository
	MediaStorage       MediaStorage
	AttemptStorage     AttemptStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations, opens the media
// driver selected by cfg.Media.Driver and picks Redis for login attempts when
// an address is configured.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	media, err := NewMediaStorage(ctx, cfg.Media, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	storages := &Storages{
		ProjectRepository:  NewProjectRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
		ReviewRepository:   NewReviewRepository(db, logger),
		MediaStorage:       media,
		AttemptStorage:     NewMemoryAttemptStorage(),
		db:                 db,
	}

	if cfg.Redis.Addr != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.redis = client
		storages.AttemptStorage = NewRedisAttemptStorage(client)
	}

	return storages, nil
}

// NewMediaStorage returns the blob store selected by cfg.Driver.
func NewMediaStorage(ctx context.Context, cfg config.Media, logger *logger.Logger) (MediaStorage, error) {
	switch cfg.Driver {
	case config.MediaDriverS3:
		return NewS3MediaStorage(ctx, cfg, logger)
	case config.MediaDriverFS, "":
		return NewFileMediaStorage(cfg.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
}

// Close releases database and Redis connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = s.redis.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}
