package identity

import (
	"context"

	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/nameparser"
	"go.uber.org/zap"
)

// Resolution is an accepted parse. ShowID is set when the show is known, either
// because the caller supplied it or because an anime parse was confirmed.
type Resolution struct {
	nameparser.ParseResult
	ShowID int64 `json:"showId,omitempty"`
}

// ResolveParse parses name in the modes that fit the known show, or in anime
// then standard mode when no show is given. An anime parse without a known show
// is only accepted when its series name matches a show that is anime.
func (r Resolver) ResolveParse(ctx context.Context, name string, show *catalog.Show, cat catalog.Catalog, allowRemote bool) (*Resolution, error) {
	log := logger.FromCtx(ctx, zap.String("name", name))

	for _, mode := range parseModes(show, cat) {
		result, err := r.parser.Parse(name, mode)
		if err != nil {
			log.Debugw("unable to parse", zap.Stringer("mode", mode), zap.Error(err))
			continue
		}

		if mode == nameparser.ModeAnime && show == nil {
			id, err := r.MatchByName(ctx, result.SeriesName, cat, allowRemote)
			if err != nil {
				return nil, err
			}

			if id == 0 {
				log.Debugw("anime parse has no matching show", zap.String("series", result.SeriesName))
				continue
			}

			anime, err := r.IsAnimeShow(ctx, id, cat, false)
			if err != nil {
				return nil, err
			}

			if !anime {
				log.Debugw("anime parse matched a show that is not anime", zap.Int64("show", id))
				continue
			}

			return &Resolution{ParseResult: *result, ShowID: id}, nil
		}

		resolved := &Resolution{ParseResult: *result}
		if show != nil {
			resolved.ShowID = show.ID
		}

		log.Debugw("parsed", zap.Stringer("mode", mode), zap.String("series", result.SeriesName))
		return resolved, nil
	}

	return nil, &InvalidNameError{Name: name}
}

func parseModes(show *catalog.Show, cat catalog.Catalog) []nameparser.Mode {
	switch {
	case show == nil:
		return []nameparser.Mode{nameparser.ModeAnime, nameparser.ModeStandard}
	case cat.IsAnime(show):
		return []nameparser.Mode{nameparser.ModeAnime}
	default:
		return []nameparser.Mode{nameparser.ModeStandard}
	}
}
