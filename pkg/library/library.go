// Package library finds release files on disk so their names can be resolved.
package library

import (
	"context"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/sceneid/pkg/logger"
)

var (
	sampleRegex     = regexp.MustCompile(`(^|[\W_])sample\d*[\W_]`)
	mediaExtensions = []string{
		"avi", "mkv", "mpg", "mpeg", "wmv", "ogm", "mp4", "iso", "img", "divx",
		"m2ts", "m4v", "ts", "flv", "f4v", "mov", "rmvb", "vob", "dvr-ms", "wtv",
		"ogv", "3gp", "webm",
	}
)

// ReleaseFile is a media file found while walking a library
type ReleaseFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// HumanSize formats the size for display
func (r ReleaseFile) HumanSize() string {
	if r.Size < 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(r.Size))
}

type Library struct {
	fs fs.FS
}

func New(fsys fs.FS) Library {
	return Library{fs: fsys}
}

// FindReleases walks the library and returns every media file, sorted by path.
// Hidden directories are skipped.
func (l Library) FindReleases(ctx context.Context) ([]ReleaseFile, error) {
	log := logger.FromCtx(ctx)

	releases := []ReleaseFile{}
	err := fs.WalkDir(l.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugw("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		if !IsMediaFile(d.Name()) {
			return nil
		}

		release := ReleaseFile{Name: d.Name(), Path: p, Size: -1}
		if info, err := d.Info(); err == nil {
			release.Size = info.Size()
		}
		releases = append(releases, release)

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(releases, func(a, b ReleaseFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	return releases, nil
}

// IsMediaFile reports whether a file name looks like a video that isn't a sample
// or a macOS resource fork.
func IsMediaFile(name string) bool {
	if sampleRegex.MatchString(name) {
		return false
	}

	if strings.HasPrefix(name, "._") {
		return false
	}

	ext := strings.TrimPrefix(path.Ext(name), ".")
	return slices.Contains(mediaExtensions, strings.ToLower(ext))
}

// ReleaseName strips the extension so the name can be parsed
func ReleaseName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
