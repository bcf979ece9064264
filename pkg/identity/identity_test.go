package identity

import (
	"context"
	"testing"

	"github.com/kasuboski/sceneid/pkg/storage/sqlite"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newStore(t *testing.T, shows ...model.Show) *sqlite.SQLite {
	ctx := context.Background()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	t.Cleanup(func() {
		store.Close()
	})

	for _, s := range shows {
		_, err := store.CreateShow(ctx, s)
		require.NoError(t, err)
	}

	return store
}

// aliasesOf returns a lookup for a mocked alias index
func aliasesOf(m map[int64][]string) func(context.Context, int64) []string {
	return func(_ context.Context, id int64) []string {
		return m[id]
	}
}
