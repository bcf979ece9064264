package identity

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/storage"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// IsAnimeShow reports whether a show uses absolute numbering.
// The catalog answers unless it is empty or forceStore is set, then the stored show does.
// A show neither source knows about is not anime.
func (r Resolver) IsAnimeShow(ctx context.Context, showID int64, cat catalog.Catalog, forceStore bool) (bool, error) {
	log := logger.FromCtx(ctx, zap.Int64("show", showID))

	if !forceStore && cat.Len() > 0 {
		show, err := cat.FindByID(showID)
		if err != nil {
			return false, err
		}

		return cat.IsAnime(show), nil
	}

	if showID == 0 || r.shows == nil {
		return false, nil
	}

	show, err := r.shows.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(showID)))
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug("show not stored")
		return false, nil
	}
	if err != nil {
		log.Warnw("failed to read stored show", zap.Error(err))
		return false, nil
	}

	return show.Anime, nil
}

// AnyAnimePresent reports whether any show in the snapshot is anime.
func AnyAnimePresent(cat catalog.Catalog) bool {
	return cat.AnyAnimePresent()
}
