package migrations_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/storage/sqlite/migrations"
)

func hasSessionsTable(t *testing.T, db *sql.DB) bool {
	t.Helper()

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'sessions'`).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestNewMigrator(t *testing.T) {
	_, err := migrations.NewMigrator(nil, log.Noop)
	assert.Error(t, err)
}

func TestMigratorUpAndDown(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrations.db"))
	require.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrations.NewMigrator(db, log.Noop)
	require.NoError(err)

	require.NoError(m.Up(ctx))
	assert.True(hasSessionsTable(t, db))

	// Already up to date.
	require.NoError(m.Up(ctx))
	assert.True(hasSessionsTable(t, db))

	require.NoError(m.Down(ctx))
	assert.False(hasSessionsTable(t, db))

	// Nothing left to revert.
	require.NoError(m.Down(ctx))

	require.NoError(m.Up(ctx))
	assert.True(hasSessionsTable(t, db))
}
