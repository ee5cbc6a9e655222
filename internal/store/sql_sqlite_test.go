package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteFilePath(t *testing.T) {
	tests := map[string]string{
		"session.db":                         "session.db",
		"/var/lib/rexora/session.db":         "/var/lib/rexora/session.db",
		"file:session.db?_busy_timeout=5000": "session.db",
		":memory:":                           ":memory:",
	}
	for dsn, want := range tests {
		assert.Equal(t, want, sqliteFilePath(dsn), dsn)
	}
}

func TestNewConnectSQLite_CreatesPrivateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.db")

	db, err := NewConnectSQLite(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dir, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dir.Mode().Perm())
}

func TestNewConnectSQLite_InMemory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}
