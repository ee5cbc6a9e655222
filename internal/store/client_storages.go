package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
)

// ClientStorages groups the admin client's local storages.
type ClientStorages struct {
	// SessionStorage persists the admin token between runs.
	SessionStorage SessionStorage

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.SessionDSN, creating
// it when missing, and prepares the session table.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.SessionDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessions, err := NewSessionRepository(ctx, db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{
		SessionStorage: sessions,
		db:             db,
	}, nil
}

// Close releases the SQLite connection.
func (c *ClientStorages) Close() error {
	return c.db.Close()
}
