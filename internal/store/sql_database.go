package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/migrations"
)

// DB wraps a *sql.DB with an error classifier used to decide whether a
// failed statement is worth repeating.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn and repeats it while the classifier reports the error as
// [Retryable]. A nil classifier disables retries.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}

		if err = fn(); err == nil {
			return nil
		}
	}

	return err
}
