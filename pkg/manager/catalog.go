package manager

import (
	"context"
	"fmt"

	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/samber/lo"
)

// Catalog loads a snapshot of every stored show and its episodes
func (m IdentityManager) Catalog(ctx context.Context) (catalog.Catalog, error) {
	shows, err := m.storage.ListShows(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to list shows: %w", err)
	}

	episodes, err := m.storage.ListEpisodes(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to list episodes: %w", err)
	}

	byShow := lo.GroupBy(episodes, func(e *model.Episode) int32 {
		return e.ShowID
	})

	return catalog.New(lo.Map(shows, func(s *model.Show, _ int) *catalog.Show {
		return toCatalogShow(s, byShow[s.ID])
	})...), nil
}

func toCatalogShow(s *model.Show, episodes []*model.Episode) *catalog.Show {
	show := &catalog.Show{
		ID:    int64(s.ID),
		Name:  s.Name,
		Anime: s.Anime,
		Episodes: lo.Map(episodes, func(e *model.Episode, _ int) catalog.Episode {
			return catalog.Episode{
				ShowID:         int64(e.ShowID),
				Season:         e.Season,
				Episode:        e.Episode,
				AbsoluteNumber: e.AbsoluteNumber,
			}
		}),
	}

	if s.AltID != nil {
		show.AltID = int64(*s.AltID)
	}

	if s.StartYear != nil {
		show.StartYear = *s.StartYear
	}

	return show
}
