package identity

import (
	"errors"
	"testing"

	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animeShow() *catalog.Show {
	return &catalog.Show{
		ID:    42,
		Name:  "Anime Title",
		Anime: true,
		Episodes: []catalog.Episode{
			{ShowID: 42, Season: 1, Episode: 5, AbsoluteNumber: ptr(int32(5))},
			{ShowID: 42, Season: 1, Episode: 7, AbsoluteNumber: ptr(int32(7))},
			{ShowID: 42, Season: 1, Episode: 12, AbsoluteNumber: ptr(int32(12))},
			{ShowID: 42, Season: 2, Episode: 1, AbsoluteNumber: ptr(int32(13))},
		},
	}
}

func TestResolveAbsoluteNumbers(t *testing.T) {
	t.Run("in order", func(t *testing.T) {
		got, err := ResolveAbsoluteNumbers(animeShow(), []int32{7, 5})
		require.NoError(t, err)
		assert.Equal(t, AbsoluteResult{Season: 1, Episodes: []int32{7, 5}}, got)
	})

	t.Run("season of the last episode", func(t *testing.T) {
		got, err := ResolveAbsoluteNumbers(animeShow(), []int32{12, 13})
		require.NoError(t, err)
		assert.Equal(t, AbsoluteResult{Season: 2, Episodes: []int32{12, 1}}, got)
	})

	t.Run("one missing fails everything", func(t *testing.T) {
		got, err := ResolveAbsoluteNumbers(animeShow(), []int32{5, 6, 7})
		assert.ErrorIs(t, err, ErrEpisodeNotFoundByAbsoluteNumber)
		assert.Equal(t, AbsoluteResult{}, got)

		var notFound *EpisodeNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, int64(42), notFound.Show)
		assert.Equal(t, int32(6), notFound.Absolute)
	})

	t.Run("no numbers", func(t *testing.T) {
		_, err := ResolveAbsoluteNumbers(animeShow(), nil)
		assert.ErrorIs(t, err, ErrNoAbsoluteNumbers)
	})

	t.Run("no show", func(t *testing.T) {
		_, err := ResolveAbsoluteNumbers(nil, []int32{1})
		assert.ErrorIs(t, err, ErrUnknownShow)
	})
}

func TestResolveAbsoluteNumbersByID(t *testing.T) {
	cat := catalog.New(animeShow())

	got, err := ResolveAbsoluteNumbersByID(cat, 42, []int32{13})
	require.NoError(t, err)
	assert.Equal(t, AbsoluteResult{Season: 2, Episodes: []int32{1}}, got)

	_, err = ResolveAbsoluteNumbersByID(cat, 1, []int32{13})
	assert.ErrorIs(t, err, ErrUnknownShow)

	_, err = ResolveAbsoluteNumbersByID(cat, 42, []int32{})
	assert.ErrorIs(t, err, ErrNoAbsoluteNumbers)

	_, err = ResolveAbsoluteNumbersByID(catalog.New(animeShow(), animeShow()), 42, []int32{13})
	assert.ErrorIs(t, err, ErrMultipleShows)
}
