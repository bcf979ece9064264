// Package alias serves the known alternate names ("scene exceptions") of shows.
package alias

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/cache"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/storage"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Index reads scene exceptions from storage and keeps them per show until invalidated.
type Index struct {
	store   storage.SceneExceptionStorage
	entries *cache.Cache[int64, []string]
}

func New(store storage.SceneExceptionStorage) *Index {
	return &Index{
		store:   store,
		entries: cache.New[int64, []string](),
	}
}

// ExceptionsFor returns the alternate names of a show. A show without any, or
// one whose names could not be loaded, gets an empty list.
func (i *Index) ExceptionsFor(ctx context.Context, showID int64) []string {
	log := logger.FromCtx(ctx, zap.Int64("show", showID))

	names, err := i.entries.Load(showID, func() ([]string, error) {
		exceptions, err := i.store.ListSceneExceptions(ctx, table.SceneException.ShowID.EQ(sqlite.Int64(showID)))
		if err != nil {
			return nil, err
		}

		names := lo.Uniq(lo.Map(exceptions, func(e *model.SceneException, _ int) string {
			return e.Name
		}))
		log.Debugw("loaded scene exceptions", zap.Int("count", len(names)))

		return names, nil
	})
	if err != nil {
		log.Warnw("failed to load scene exceptions", zap.Error(err))
		return []string{}
	}

	return names
}

// Add stores a new alternate name for a show and drops the cached entry.
func (i *Index) Add(ctx context.Context, showID int64, name string) (int64, error) {
	id, err := i.store.CreateSceneException(ctx, model.SceneException{
		ShowID: int32(showID),
		Name:   name,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add scene exception for show %d: %w", showID, err)
	}

	i.Invalidate(showID)
	return id, nil
}

// Invalidate forgets the cached names of the given shows, or of every show when none are given.
func (i *Index) Invalidate(showIDs ...int64) {
	if len(showIDs) == 0 {
		i.entries.Clear()
		return
	}

	i.entries.Forget(showIDs...)
}
