package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/identity/mocks"
	"github.com/kasuboski/sceneid/pkg/nameparser"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchByName(t *testing.T) {
	ctx := context.Background()
	cat := catalog.New(
		&catalog.Show{ID: 1, Name: "Show Name"},
		&catalog.Show{ID: 2, Name: "The Office"},
		&catalog.Show{ID: 3, Name: "Law & Order"},
	)

	t.Run("canonical name skips aliases and remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aliases := mocks.NewMockAliasIndex(ctrl)
		metadata := mocks.NewMockMetadataService(ctrl)

		r := New(nameparser.New(), metadata, aliases, nil)
		id, err := r.MatchByName(ctx, "Show.Name", cat, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		id, err = r.MatchByName(ctx, "law.and.order", cat, true)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aliases := mocks.NewMockAliasIndex(ctrl)
		aliases.EXPECT().ExceptionsFor(gomock.Any(), gomock.Any()).DoAndReturn(aliasesOf(map[int64][]string{
			2: {"The Office (US)"},
		})).Times(3)

		r := New(nameparser.New(), nil, aliases, nil)
		id, err := r.MatchByName(ctx, "The.Office.US", cat, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)
	})

	t.Run("no match without remote makes no remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aliases := mocks.NewMockAliasIndex(ctrl)
		aliases.EXPECT().ExceptionsFor(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		metadata := mocks.NewMockMetadataService(ctrl)
		metadata.EXPECT().FindByName(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		r := New(nameparser.New(), metadata, aliases, nil)
		id, err := r.MatchByName(ctx, "Unknown Show", cat, false)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("only exact matches count", func(t *testing.T) {
		r := New(nameparser.New(), nil, nil, nil)
		id, err := r.MatchByName(ctx, "Show Name Special Version", cat, false)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("empty name", func(t *testing.T) {
		r := New(nameparser.New(), nil, nil, nil)
		id, err := r.MatchByName(ctx, "", cat, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("remote retries all locales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metadata := mocks.NewMockMetadataService(ctrl)
		gomock.InOrder(
			metadata.EXPECT().FindByName(gomock.Any(), "Unknown Show", false).Return(nil, tmdb.ErrNotFound),
			metadata.EXPECT().FindByName(gomock.Any(), "Unknown Show", true).Return(&tmdb.Series{ID: 99}, nil),
		)

		r := New(nameparser.New(), metadata, nil, nil)
		id, err := r.MatchByName(ctx, "Unknown Show", cat, true)
		require.NoError(t, err)
		assert.Equal(t, int64(99), id)
	})

	t.Run("remote not found anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metadata := mocks.NewMockMetadataService(ctrl)
		metadata.EXPECT().FindByName(gomock.Any(), "Unknown Show", false).Return(nil, tmdb.ErrNotFound)
		metadata.EXPECT().FindByName(gomock.Any(), "Unknown Show", true).Return(nil, tmdb.ErrNotFound)

		r := New(nameparser.New(), metadata, nil, nil)
		id, err := r.MatchByName(ctx, "Unknown Show", cat, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("remote failure is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metadata := mocks.NewMockMetadataService(ctrl)
		metadata.EXPECT().FindByName(gomock.Any(), "Unknown Show", false).Return(nil, errors.New("timeout")).Times(1)

		r := New(nameparser.New(), metadata, nil, nil)
		id, err := r.MatchByName(ctx, "Unknown Show", cat, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("shared show name is ambiguous", func(t *testing.T) {
		dupes := catalog.New(
			&catalog.Show{ID: 1, Name: "Show Name"},
			&catalog.Show{ID: 5, Name: "Show.Name"},
		)

		r := New(nameparser.New(), nil, nil, nil)
		id, err := r.MatchByName(ctx, "Show Name", dupes, false)
		assert.ErrorIs(t, err, ErrMultipleShows)
		assert.Equal(t, int64(0), id)
	})

	t.Run("shared alias is ambiguous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		aliases := mocks.NewMockAliasIndex(ctrl)
		aliases.EXPECT().ExceptionsFor(gomock.Any(), gomock.Any()).DoAndReturn(aliasesOf(map[int64][]string{
			1: {"Office"},
			2: {"Office"},
		})).AnyTimes()

		r := New(nameparser.New(), nil, aliases, nil)
		_, err := r.MatchByName(ctx, "Office", cat, false)
		assert.ErrorIs(t, err, ErrMultipleShows)
	})
}

func TestMatchByStoredRecords(t *testing.T) {
	ctx := context.Background()
	store := newStore(t,
		model.Show{ID: 1, Name: "Doctor Who", StartYear: ptr(int32(2005))},
		model.Show{ID: 2, Name: "Doctor Who", StartYear: ptr(int32(1963))},
		model.Show{ID: 3, Name: "The Office"},
		model.Show{ID: 4, Name: "Kimetsu no Yaiba", AltName: ptr("Demon Slayer")},
	)
	r := New(nameparser.New(), nil, nil, store)

	tests := []struct {
		name   string
		in     string
		want   Match
		wantOK bool
	}{
		{"separators", "The.Office", Match{ID: 3, Name: "The Office"}, true},
		{"case insensitive", "the office", Match{ID: 3, Name: "The Office"}, true},
		{"alternate name", "Demon-Slayer", Match{ID: 4, Name: "Kimetsu no Yaiba"}, true},
		{"year in parens", "Doctor Who (2005)", Match{ID: 1, Name: "Doctor Who"}, true},
		{"bare year", "Doctor.Who.1963", Match{ID: 2, Name: "Doctor Who"}, true},
		{"ambiguous", "Doctor Who", Match{}, false},
		{"wrong year", "Doctor Who (1999)", Match{}, false},
		{"unknown", "Unknown Show", Match{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.MatchByStoredRecords(ctx, tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("without a store", func(t *testing.T) {
		r := New(nameparser.New(), nil, nil, nil)
		_, ok := r.MatchByStoredRecords(ctx, "The Office")
		assert.False(t, ok)
	})

	t.Run("store failure is no match", func(t *testing.T) {
		broken := newStore(t, model.Show{ID: 3, Name: "The Office"})
		require.NoError(t, broken.Close())

		r := New(nameparser.New(), nil, nil, broken)
		_, ok := r.MatchByStoredRecords(ctx, "The Office")
		assert.False(t, ok)
	})
}
