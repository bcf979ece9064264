package identity

import (
	"context"
	"testing"

	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/nameparser"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAnimeShow(t *testing.T) {
	ctx := context.Background()
	store := newStore(t,
		model.Show{ID: 1, Name: "Anime Title", Anime: true},
		model.Show{ID: 2, Name: "Show Name"},
	)
	r := New(nameparser.New(), nil, nil, store)

	cat := catalog.New(
		&catalog.Show{ID: 1, Name: "Anime Title", Anime: false},
		&catalog.Show{ID: 2, Name: "Show Name"},
		&catalog.Show{ID: 3, Name: "Other Anime", Anime: true},
	)

	tests := []struct {
		name       string
		showID     int64
		cat        catalog.Catalog
		forceStore bool
		want       bool
	}{
		{"catalog anime", 3, cat, false, true},
		{"catalog wins over store", 1, cat, false, false},
		{"not in catalog", 4, cat, false, false},
		{"forced store", 1, cat, true, true},
		{"empty catalog uses store", 1, catalog.Catalog{}, false, true},
		{"stored but not anime", 2, catalog.Catalog{}, false, false},
		{"not stored", 9, catalog.Catalog{}, false, false},
		{"no id", 0, catalog.Catalog{}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.IsAnimeShow(ctx, tt.showID, tt.cat, tt.forceStore)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("duplicate ids", func(t *testing.T) {
		dupes := catalog.New(&catalog.Show{ID: 1}, &catalog.Show{ID: 1, Anime: true})
		_, err := r.IsAnimeShow(ctx, 1, dupes, false)
		assert.ErrorIs(t, err, ErrMultipleShows)
	})

	t.Run("no store", func(t *testing.T) {
		r := New(nameparser.New(), nil, nil, nil)
		got, err := r.IsAnimeShow(ctx, 1, catalog.Catalog{}, false)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestAnyAnimePresent(t *testing.T) {
	assert.False(t, AnyAnimePresent(catalog.Catalog{}))
	assert.False(t, AnyAnimePresent(catalog.New(&catalog.Show{ID: 1})))
	assert.True(t, AnyAnimePresent(catalog.New(&catalog.Show{ID: 1}, &catalog.Show{ID: 2, Anime: true})))
}
