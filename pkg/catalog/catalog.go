// Package catalog holds the in-memory snapshot of known shows that name
// resolution is checked against before any remote lookup.
package catalog

import (
	"errors"
	"fmt"
)

// ErrMultipleShows means more than one show in a snapshot shares an identifier.
var ErrMultipleShows = errors.New("multiple shows share the same id")

// Episode is a single episode of a show. AbsoluteNumber is only set for anime.
type Episode struct {
	ShowID         int64  `json:"showId"`
	Season         int32  `json:"season"`
	Episode        int32  `json:"episode"`
	AbsoluteNumber *int32 `json:"absoluteNumber,omitempty"`
}

// Show is a catalog entry
type Show struct {
	ID        int64     `json:"id"`
	AltID     int64     `json:"altId,omitempty"`
	Name      string    `json:"name"`
	Anime     bool      `json:"anime"`
	StartYear int32     `json:"startYear,omitempty"`
	Episodes  []Episode `json:"episodes,omitempty"`
}

// EpisodeByAbsolute finds the episode with the given absolute number.
func (s *Show) EpisodeByAbsolute(absolute int32) (Episode, bool) {
	for _, ep := range s.Episodes {
		if ep.AbsoluteNumber != nil && *ep.AbsoluteNumber == absolute {
			return ep, true
		}
	}

	return Episode{}, false
}

// Catalog is a read-only snapshot of shows. The zero value is an empty catalog.
type Catalog struct {
	shows   []*Show
	byID    map[int64][]*Show
	byAltID map[int64][]*Show
}

// New builds a snapshot from the given shows. Duplicate ids are kept so that
// lookups can report them instead of silently picking one.
func New(shows ...*Show) Catalog {
	c := Catalog{
		shows:   make([]*Show, 0, len(shows)),
		byID:    make(map[int64][]*Show, len(shows)),
		byAltID: make(map[int64][]*Show),
	}

	for _, s := range shows {
		if s == nil {
			continue
		}

		c.shows = append(c.shows, s)
		c.byID[s.ID] = append(c.byID[s.ID], s)
		if s.AltID != 0 {
			c.byAltID[s.AltID] = append(c.byAltID[s.AltID], s)
		}
	}

	return c
}

// FindByID returns the show with the given id or nil if there is none.
func (c Catalog) FindByID(id int64) (*Show, error) {
	return pick(c.byID[id], id)
}

// FindByAltID looks a show up by its secondary id. An id of 0 never matches.
func (c Catalog) FindByAltID(id int64) (*Show, error) {
	if id == 0 {
		return nil, nil
	}

	return pick(c.byAltID[id], id)
}

func pick(found []*Show, id int64) (*Show, error) {
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w: %d entries for id %d", ErrMultipleShows, len(found), id)
	}
}

// All returns every show in the snapshot.
func (c Catalog) All() []*Show {
	all := make([]*Show, len(c.shows))
	copy(all, c.shows)
	return all
}

// Len is the number of shows in the snapshot.
func (c Catalog) Len() int {
	return len(c.shows)
}

// IsAnime reads the anime flag of a show.
func (c Catalog) IsAnime(s *Show) bool {
	return s != nil && s.Anime
}

// AnyAnimePresent reports whether at least one show is flagged as anime.
func (c Catalog) AnyAnimePresent() bool {
	for _, s := range c.shows {
		if s.Anime {
			return true
		}
	}

	return false
}
