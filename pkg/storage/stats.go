package storage

import (
	"context"
)

// StatisticsStorage interface for aggregate catalog queries
type StatisticsStorage interface {
	GetCatalogStats(ctx context.Context) (*CatalogStats, error)
}

type CatalogStats struct {
	Shows           int `json:"shows"`
	AnimeShows      int `json:"animeShows"`
	Episodes        int `json:"episodes"`
	SceneExceptions int `json:"sceneExceptions"`
}
