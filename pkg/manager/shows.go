package manager

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/pagination"
	"github.com/kasuboski/sceneid/pkg/storage"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AddShow stores a show, replacing any show with the same id
func (m IdentityManager) AddShow(ctx context.Context, request AddShowRequest) (int64, error) {
	log := logger.FromCtx(ctx, zap.Int64("show", request.ID))

	if err := m.validate.Struct(request); err != nil {
		return 0, fmt.Errorf("invalid show: %w", err)
	}

	show := model.Show{
		ID:    int32(request.ID),
		Name:  request.Name,
		Anime: request.Anime,
	}
	if request.AltID != 0 {
		show.AltID = lo.ToPtr(int32(request.AltID))
	}
	if request.AltName != "" {
		show.AltName = lo.ToPtr(request.AltName)
	}
	if request.StartYear != 0 {
		show.StartYear = lo.ToPtr(request.StartYear)
	}

	id, err := m.storage.CreateShow(ctx, show)
	if err != nil {
		log.Errorw("failed to add show", zap.Error(err))
		return 0, err
	}

	log.Infow("added show", zap.String("name", request.Name), zap.Bool("anime", request.Anime))
	return id, nil
}

// SetAnime changes the anime flag of a stored show
func (m IdentityManager) SetAnime(ctx context.Context, showID int64, anime bool) error {
	if err := m.requireShow(ctx, showID); err != nil {
		return err
	}

	return m.storage.UpdateShowAnime(ctx, showID, anime)
}

// AddAlias stores a scene exception for a show
func (m IdentityManager) AddAlias(ctx context.Context, request AddAliasRequest) (int64, error) {
	if err := m.validate.Struct(request); err != nil {
		return 0, fmt.Errorf("invalid alias: %w", err)
	}

	if err := m.requireShow(ctx, request.ShowID); err != nil {
		return 0, err
	}

	return m.aliases.Add(ctx, request.ShowID, request.Name)
}

func (m IdentityManager) AddEpisode(ctx context.Context, request AddEpisodeRequest) (int64, error) {
	if err := m.validate.Struct(request); err != nil {
		return 0, fmt.Errorf("invalid episode: %w", err)
	}

	if err := m.requireShow(ctx, request.ShowID); err != nil {
		return 0, err
	}

	return m.storage.CreateEpisode(ctx, model.Episode{
		ShowID:         int32(request.ShowID),
		Season:         request.Season,
		Episode:        request.Episode,
		AbsoluteNumber: request.AbsoluteNumber,
	})
}

// ListShows returns every stored show with its episode count and aliases
func (m IdentityManager) ListShows(ctx context.Context) ([]ShowSummary, error) {
	shows, err := m.storage.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	episodes, err := m.storage.ListEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	counts := lo.CountValuesBy(episodes, func(e *model.Episode) int32 {
		return e.ShowID
	})

	return lo.Map(shows, func(s *model.Show, _ int) ShowSummary {
		return ShowSummary{
			ID:        int64(s.ID),
			Name:      s.Name,
			AltName:   lo.FromPtr(s.AltName),
			Anime:     s.Anime,
			StartYear: lo.FromPtr(s.StartYear),
			Episodes:  counts[s.ID],
			Aliases:   m.aliases.ExceptionsFor(ctx, int64(s.ID)),
			Added:     s.Added,
		}
	}), nil
}

// ListShowsPage is ListShows cut down to a single page
func (m IdentityManager) ListShowsPage(ctx context.Context, params pagination.Params) (*ShowPage, error) {
	shows, err := m.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	page, meta := pagination.Apply(shows, params)
	return &ShowPage{Shows: page, Pagination: meta}, nil
}

// DeleteShow removes a show along with its episodes and aliases
func (m IdentityManager) DeleteShow(ctx context.Context, showID int64) error {
	if err := m.requireShow(ctx, showID); err != nil {
		return err
	}

	if err := m.storage.DeleteShow(ctx, showID); err != nil {
		return err
	}

	m.aliases.Invalidate(showID)
	return nil
}

func (m IdentityManager) Stats(ctx context.Context) (*storage.CatalogStats, error) {
	return m.storage.GetCatalogStats(ctx)
}

// ListEpisodes returns the stored episodes of a show
func (m IdentityManager) ListEpisodes(ctx context.Context, showID int64) ([]*model.Episode, error) {
	return m.storage.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
}
