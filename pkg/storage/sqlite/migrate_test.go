package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigration_000001_FreshDatabase(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(tmpFile)
	require.NoError(t, err)
	defer store.Close()

	err = store.Migrate(ctx)
	require.NoError(t, err)

	version, dirty, err := store.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	shows, err := store.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestMigration_VersionBeforeMigrate(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()

	version, dirty, err := store.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)
}

func TestMigration_Idempotent(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "again.db")
	ctx := context.Background()

	store, err := New(tmpFile)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	version, dirty, err := store.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}
