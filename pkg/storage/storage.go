package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	Migrate(ctx context.Context) error
	ShowStorage
	EpisodeStorage
	SceneExceptionStorage
	StatisticsStorage
}

type ShowStorage interface {
	CreateShow(ctx context.Context, show model.Show) (int64, error)
	GetShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error)
	ListShows(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Show, error)
	UpdateShowAnime(ctx context.Context, id int64, anime bool) error
	DeleteShow(ctx context.Context, id int64) error
}

type EpisodeStorage interface {
	CreateEpisode(ctx context.Context, episode model.Episode) (int64, error)
	ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error)
	DeleteEpisode(ctx context.Context, id int64) error
}

type SceneExceptionStorage interface {
	CreateSceneException(ctx context.Context, exception model.SceneException) (int64, error)
	ListSceneExceptions(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.SceneException, error)
	DeleteSceneException(ctx context.Context, id int64) error
}
