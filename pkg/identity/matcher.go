package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/names"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
	"github.com/kasuboski/sceneid/pkg/tmdb"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Match is a show found in storage.
type Match struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MatchByName finds the id of the show a raw name refers to, or 0 when there is none.
// Canonical show names are compared first, then each show's aliases, both after
// full sanitizing. Only exact matches count. With allowRemote the metadata
// service is asked when nothing local matched. A name shared by several shows
// returns ErrMultipleShows.
func (r Resolver) MatchByName(ctx context.Context, rawName string, cat catalog.Catalog, allowRemote bool) (int64, error) {
	log := logger.FromCtx(ctx, zap.String("name", rawName))

	wanted := names.FullSanitize(rawName)
	if wanted == "" {
		return 0, nil
	}

	shows := cat.All()

	byName := lo.Uniq(lo.FilterMap(shows, func(s *catalog.Show, _ int) (int64, bool) {
		return s.ID, names.FullSanitize(s.Name) == wanted
	}))
	if id, err := single(byName, rawName, "show name"); id != 0 || err != nil {
		return id, err
	}

	if r.aliases != nil {
		byAlias := lo.Uniq(lo.FilterMap(shows, func(s *catalog.Show, _ int) (int64, bool) {
			return s.ID, lo.ContainsBy(r.aliases.ExceptionsFor(ctx, s.ID), func(alias string) bool {
				return names.FullSanitize(alias) == wanted
			})
		}))
		if id, err := single(byAlias, rawName, "scene exception"); id != 0 || err != nil {
			return id, err
		}
	}

	if !allowRemote || r.metadata == nil {
		log.Debug("no local match")
		return 0, nil
	}

	return r.remoteLookup(ctx, rawName), nil
}

func single(ids []int64, rawName, source string) (int64, error) {
	switch len(ids) {
	case 0:
		return 0, nil
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("%w: %q matches the %s of shows %v", ErrMultipleShows, rawName, source, ids)
	}
}

func (r Resolver) remoteLookup(ctx context.Context, name string) int64 {
	log := logger.FromCtx(ctx, zap.String("name", name))

	series, err := r.metadata.FindByName(ctx, name, false)
	if errors.Is(err, tmdb.ErrNotFound) {
		log.Debug("not found remotely, searching all locales")
		series, err = r.metadata.FindByName(ctx, name, true)
	}

	switch {
	case errors.Is(err, tmdb.ErrNotFound):
		log.Debug("not found remotely")
		return 0
	case err != nil:
		log.Warnw("remote lookup failed", zap.Error(err))
		return 0
	case series == nil:
		return 0
	}

	log.Debugw("matched remotely", zap.Int64("show", series.ID))
	return series.ID
}

// MatchByStoredRecords looks a name up in the stored shows.
// The separator-normalized name is tried before the raw one. A variant counts
// only when exactly one show matches, either directly or, when the variant ends
// in a year, by name prefix within that start year.
func (r Resolver) MatchByStoredRecords(ctx context.Context, rawName string) (Match, bool) {
	if r.shows == nil {
		return Match{}, false
	}

	log := logger.FromCtx(ctx, zap.String("name", rawName))

	for _, variant := range lo.Uniq([]string{names.SeparatorsToSpaces(rawName), rawName}) {
		shows, err := r.shows.ListShows(ctx, nameLike(variant))
		if err != nil {
			log.Warnw("failed to search stored shows", zap.String("variant", variant), zap.Error(err))
			continue
		}

		if len(shows) == 1 {
			return toMatch(shows[0]), true
		}

		stripped, year, ok := names.StripYear(variant)
		if ok {
			log.Debugw("retrying without year", zap.String("variant", stripped), zap.Int("year", year))
			shows, err = r.shows.ListShows(ctx, nameLike(stripped+"%"), table.Show.StartYear.EQ(sqlite.Int32(int32(year))))
			if err != nil {
				log.Warnw("failed to search stored shows", zap.String("variant", stripped), zap.Error(err))
				continue
			}
		}

		switch len(shows) {
		case 0:
			log.Debugw("no stored show", zap.String("variant", variant))
		case 1:
			return toMatch(shows[0]), true
		default:
			log.Debugw("multiple stored shows", zap.String("variant", variant), zap.Int("count", len(shows)))
		}
	}

	return Match{}, false
}

func nameLike(pattern string) sqlite.BoolExpression {
	return sqlite.OR(
		table.Show.Name.LIKE(sqlite.String(pattern)),
		table.Show.AltName.LIKE(sqlite.String(pattern)),
	)
}

func toMatch(s *model.Show) Match {
	return Match{ID: int64(s.ID), Name: s.Name}
}
