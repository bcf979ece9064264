package nameparser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseStandard(t *testing.T) {
	p := New()

	tests := []struct {
		name         string
		in           string
		wantSeries   string
		wantSeason   *int32
		wantEpisodes []int32
		wantGroup    string
		wantRule     string
	}{
		{
			name:         "dotted with quality",
			in:           "Show.Name.S02E05.720p",
			wantSeries:   "Show Name",
			wantSeason:   ptr(int32(2)),
			wantEpisodes: []int32{5},
			wantRule:     "standard",
		},
		{
			name:         "multi episode with group",
			in:           "Show.Name.S01E02E03.Source.Quality.Etc-Group",
			wantSeries:   "Show Name",
			wantSeason:   ptr(int32(1)),
			wantEpisodes: []int32{2, 3},
			wantGroup:    "Group",
			wantRule:     "standard",
		},
		{
			name:         "repeated season marker",
			in:           "Show Name - S01E02 - S01E03 - My Ep Name",
			wantSeries:   "Show Name",
			wantSeason:   ptr(int32(1)),
			wantEpisodes: []int32{2, 3},
			wantRule:     "standard",
		},
		{
			name:         "web source is not a group",
			in:           "Show.Name.S03E10.1080p.WEB-DL.mkv",
			wantSeries:   "Show Name",
			wantSeason:   ptr(int32(3)),
			wantEpisodes: []int32{10},
			wantRule:     "standard",
		},
		{
			name:         "fov",
			in:           "Show Name - 1x02 - 1x03 - Ep Name",
			wantSeries:   "Show Name",
			wantSeason:   ptr(int32(1)),
			wantEpisodes: []int32{2, 3},
			wantRule:     "fov",
		},
		{
			name:       "season pack",
			in:         "Show.Name.S04.720p-Group",
			wantSeries: "Show Name",
			wantSeason: ptr(int32(4)),
			wantGroup:  "Group",
			wantRule:   "season_only",
		},
		{
			name:         "digits keep their dots",
			in:           "9.1.1.S01E01.HDTV",
			wantSeries:   "9.1.1",
			wantSeason:   ptr(int32(1)),
			wantEpisodes: []int32{1},
			wantRule:     "standard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.in, ModeStandard)
			require.NoError(t, err)

			assert.Equal(t, tt.in, got.Original)
			assert.Equal(t, ModeStandard, got.Mode)
			assert.Equal(t, tt.wantSeries, got.SeriesName)
			assert.Equal(t, tt.wantSeason, got.Season)
			assert.Equal(t, tt.wantEpisodes, got.Episodes)
			assert.Empty(t, got.AbsoluteNumbers)
			assert.Equal(t, tt.wantGroup, got.ReleaseGroup)
			assert.Equal(t, tt.wantRule, got.Extra["rule"])
		})
	}
}

func TestParseAnime(t *testing.T) {
	p := New()

	tests := []struct {
		name         string
		in           string
		wantSeries   string
		wantAbsolute []int32
		wantGroup    string
		wantRule     string
	}{
		{
			name:         "dash without group",
			in:           "Anime Title - 013",
			wantSeries:   "Anime Title",
			wantAbsolute: []int32{13},
			wantRule:     "anime_dash",
		},
		{
			name:         "bracketed group",
			in:           "[SubGroup] Anime Title - 013 [720p].mkv",
			wantSeries:   "Anime Title",
			wantAbsolute: []int32{13},
			wantGroup:    "SubGroup",
			wantRule:     "anime_group_dash",
		},
		{
			name:         "range with version",
			in:           "[SubGroup] Anime Title - 012-014v2",
			wantSeries:   "Anime Title",
			wantAbsolute: []int32{12, 13, 14},
			wantGroup:    "SubGroup",
			wantRule:     "anime_group_dash",
		},
		{
			name:         "bare number",
			in:           "[SubGroup] Anime Title 105 [1080p]",
			wantSeries:   "Anime Title",
			wantAbsolute: []int32{105},
			wantGroup:    "SubGroup",
			wantRule:     "anime_group_bare",
		},
		{
			name:         "trailing group",
			in:           "Anime.Title.-.013.720p-SubGroup",
			wantSeries:   "Anime Title",
			wantAbsolute: []int32{13},
			wantGroup:    "SubGroup",
			wantRule:     "anime_dash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.in, ModeAnime)
			require.NoError(t, err)

			assert.Equal(t, ModeAnime, got.Mode)
			assert.Equal(t, tt.wantSeries, got.SeriesName)
			assert.Nil(t, got.Season)
			assert.Empty(t, got.Episodes)
			assert.Equal(t, tt.wantAbsolute, got.AbsoluteNumbers)
			assert.Equal(t, tt.wantGroup, got.ReleaseGroup)
			assert.Equal(t, tt.wantRule, got.Extra["rule"])
		})
	}
}

func TestParseExtra(t *testing.T) {
	p := New()

	got, err := p.Parse("[SubGroup] Anime Title - 013v2 [720p]", ModeAnime)
	require.NoError(t, err)
	assert.Equal(t, "2", got.Extra["version"])
	assert.Equal(t, "720p", got.Extra["resolution"])
	assert.Equal(t, "[720p]", got.Extra["info"])
}

func TestParseInvalid(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		in   string
		mode Mode
	}{
		{"empty", "", ModeStandard},
		{"whitespace", "   ", ModeAnime},
		{"anime name as standard", "Anime Title - 013", ModeStandard},
		{"standard name as anime", "Show.Name.S02E05.720p", ModeAnime},
		{"no numbering", "Just A Title", ModeStandard},
		{"backwards range", "Anime Title - 014-012", ModeAnime},
		{"episode zero", "Anime Title - 000", ModeAnime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.in, tt.mode)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.Nil(t, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "standard", ModeStandard.String())
	assert.Equal(t, "anime", ModeAnime.String())

	text, err := ModeAnime.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "anime", string(text))
}

func TestParseSnapshot(t *testing.T) {
	p := New()

	names := []struct {
		in   string
		mode Mode
	}{
		{"Show.Name.S02E05.720p", ModeStandard},
		{"Show.Name.S01E02E03.Source.Quality.Etc-Group", ModeStandard},
		{"Show Name - 1x02 - Ep Name", ModeStandard},
		{"[SubGroup] Anime Title - 012-014v2 [1080p]", ModeAnime},
		{"Anime Title - 013", ModeAnime},
	}

	for _, n := range names {
		t.Run(n.in, func(t *testing.T) {
			got, err := p.Parse(n.in, n.mode)
			require.NoError(t, err)
			snaps.MatchSnapshot(t, got)
		})
	}
}
