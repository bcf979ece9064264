package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/storage"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	shows, err := store.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)

	show := model.Show{
		ID:        42,
		Name:      "Anime Title",
		AltName:   ptr("Anime Title TV"),
		Anime:     true,
		StartYear: ptr(int32(2009)),
	}

	id, err := store.CreateShow(ctx, show)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	retrieved, err := store.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(id)))
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, show.Name, retrieved.Name)
	assert.Equal(t, show.AltName, retrieved.AltName)
	assert.True(t, retrieved.Anime)
	assert.Equal(t, show.StartYear, retrieved.StartYear)
	assert.NotNil(t, retrieved.Added)

	t.Run("create again updates", func(t *testing.T) {
		show.Name = "Anime Title Renamed"
		_, err := store.CreateShow(ctx, show)
		require.NoError(t, err)

		shows, err := store.ListShows(ctx)
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, "Anime Title Renamed", shows[0].Name)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		_, err := store.CreateShow(ctx, model.Show{Name: "no id"})
		assert.Error(t, err)
	})

	t.Run("update anime flag", func(t *testing.T) {
		err := store.UpdateShowAnime(ctx, 42, false)
		require.NoError(t, err)

		retrieved, err := store.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(42)))
		require.NoError(t, err)
		assert.False(t, retrieved.Anime)
	})

	t.Run("like matching is case insensitive", func(t *testing.T) {
		_, err := store.CreateShow(ctx, model.Show{ID: 7, Name: "Show Name"})
		require.NoError(t, err)

		shows, err := store.ListShows(ctx, table.Show.Name.LIKE(sqlite.String("show name")))
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, int32(7), shows[0].ID)
	})

	t.Run("multiple conditions are combined", func(t *testing.T) {
		shows, err := store.ListShows(ctx,
			table.Show.Name.LIKE(sqlite.String("%")),
			table.Show.StartYear.EQ(sqlite.Int32(2009)),
		)
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, int32(42), shows[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := store.CreateSceneException(ctx, model.SceneException{ShowID: 7, Name: "Show.Name"})
		require.NoError(t, err)

		err = store.DeleteShow(ctx, 7)
		require.NoError(t, err)

		_, err = store.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(7)))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		exceptions, err := store.ListSceneExceptions(ctx, table.SceneException.ShowID.EQ(sqlite.Int64(7)))
		require.NoError(t, err)
		assert.Empty(t, exceptions)
	})

	t.Run("failed delete keeps the show", func(t *testing.T) {
		_, err := store.db.ExecContext(ctx, `DROP TABLE "scene_exception"`)
		require.NoError(t, err)

		err = store.DeleteShow(ctx, 42)
		assert.Error(t, err)

		show, err := store.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(42)))
		require.NoError(t, err)
		assert.Equal(t, int32(42), show.ID)
	})
}
