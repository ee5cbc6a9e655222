package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
)

// sessionRepository stores the session token under [models.SessionKey] in a
// local SQLite key-value table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository creates the session table when missing and returns a
// [SessionStorage] over db.
func NewSessionRepository(ctx context.Context, db *DB, logger *logger.Logger) (SessionStorage, error) {
	if _, err := db.ExecContext(ctx, createSessionTable); err != nil {
		logger.Err(err).Str("func", "NewSessionRepository").Msg("error creating session table")
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	return &sessionRepository{
		DB:     db,
		logger: logger,
	}, nil
}

func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	var token string
	err := s.DB.QueryRowContext(ctx, getSessionValue, models.SessionKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && token == "") {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.Load").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Session{Token: token}, nil
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	if _, err := s.DB.ExecContext(ctx, saveSessionValue, models.SessionKey, session.Token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSessionValue, models.SessionKey); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
