package library

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Show.Name.S01E02.720p.HDTV.x264-GRP.mkv", true},
		{"Show.Name.S01E02.AVI", true},
		{"[Group] Show - 01 [720p].mp4", true},
		{"Show.Name.S01E02.nfo", false},
		{"Show.Name.S01E02.sample.mkv", false},
		{"sample-show.s01e02.mkv", false},
		{"Show.Name.S01E02-sample2.mkv", false},
		{"samplesize.mkv", true},
		{"._Show.Name.S01E02.mkv", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMediaFile(tt.name))
		})
	}
}

func TestReleaseName(t *testing.T) {
	assert.Equal(t, "Show.Name.S01E02.720p", ReleaseName("Show.Name.S01E02.720p.mkv"))
	assert.Equal(t, "Show Name", ReleaseName("Show Name"))
}

func TestFindReleases(t *testing.T) {
	fsys := fstest.MapFS{
		"Show Name/Season 01/Show.Name.S01E02.mkv": {Data: make([]byte, 2048)},
		"Show Name/Season 01/Show.Name.S01E01.mkv": {Data: make([]byte, 10)},
		"Show Name/Season 01/Show.Name.S01E01.nfo": {},
		"Show Name/Season 01/sample/sample.mkv":    {},
		"[Group] Anime - 01.mp4":                   {},
		".hidden/Show.Name.S01E03.mkv":             {},
		"notes.txt":                                {},
	}

	releases, err := New(fsys).FindReleases(context.Background())
	require.NoError(t, err)

	require.Len(t, releases, 3)
	assert.Equal(t, "Show Name/Season 01/Show.Name.S01E01.mkv", releases[0].Path)
	assert.Equal(t, "Show.Name.S01E02.mkv", releases[1].Name)
	assert.Equal(t, int64(2048), releases[1].Size)
	assert.Equal(t, "2.0 kB", releases[1].HumanSize())
	assert.Equal(t, "[Group] Anime - 01.mp4", releases[2].Name)
}

func TestFindReleasesEmpty(t *testing.T) {
	releases, err := New(fstest.MapFS{}).FindReleases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, releases)
}
