package sqlite

import (
	"context"

	"github.com/kasuboski/sceneid/pkg/storage"
)

// GetCatalogStats counts shows, episodes and scene exceptions in a single query
func (s *SQLite) GetCatalogStats(ctx context.Context) (*storage.CatalogStats, error) {
	// Use raw SQL since Jet ORM doesn't properly handle aggregate queries with custom structs
	row := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM show) AS shows,
			(SELECT COUNT(*) FROM show WHERE anime = 1) AS anime_shows,
			(SELECT COUNT(*) FROM episode) AS episodes,
			(SELECT COUNT(*) FROM scene_exception) AS scene_exceptions
	`)

	var stats storage.CatalogStats
	err := row.Scan(&stats.Shows, &stats.AnimeShows, &stats.Episodes, &stats.SceneExceptions)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
