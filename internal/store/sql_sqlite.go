package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/rexora-cms/internal/logger"
)

// NewConnectSQLite opens the admin client's session database. The file and
// its parent directory are created with owner-only permissions because the
// database holds the admin token.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	path := sqliteFilePath(dsn)
	if err := ensureSessionFile(path); err != nil {
		log.Err(err).Str("path", path).Msg("error preparing session database file")
		return nil, fmt.Errorf("error preparing session database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}
	// one writer; the CLI and the TUI never share a process
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("path", path).Msg("session database is unreadable")
		conn.Close()
		return nil, fmt.Errorf("error pinging session database: %w", err)
	}
	log.Debug().Str("path", path).Msg("session database opened")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// sqliteFilePath strips the "file:" scheme and the query string go-sqlite3
// accepts in a DSN.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}

func ensureSessionFile(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	return f.Close()
}
