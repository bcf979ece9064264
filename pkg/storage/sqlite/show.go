package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
)

// CreateShow stores a show in the database. An existing show with the same id is updated.
func (s *SQLite) CreateShow(ctx context.Context, show model.Show) (int64, error) {
	if show.ID == 0 {
		return 0, fmt.Errorf("show id is required")
	}

	insertColumns := table.Show.AllColumns
	if show.Added == nil || show.Added.IsZero() {
		insertColumns = insertColumns.Except(table.Show.Added)
	}

	stmt := table.Show.
		INSERT(insertColumns).
		MODEL(show).
		ON_CONFLICT(table.Show.ID).
		DO_UPDATE(sqlite.SET(
			table.Show.AltID.SET(table.Show.EXCLUDED.AltID),
			table.Show.Name.SET(table.Show.EXCLUDED.Name),
			table.Show.AltName.SET(table.Show.EXCLUDED.AltName),
			table.Show.Anime.SET(table.Show.EXCLUDED.Anime),
			table.Show.StartYear.SET(table.Show.EXCLUDED.StartYear),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create show: %w", err)
	}

	return int64(show.ID), nil
}

// GetShow looks for a single show given a where condition
func (s *SQLite) GetShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		WHERE(where).
		LIMIT(1)

	var show model.Show
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		return nil, notFound(err, "show")
	}

	return &show, nil
}

// ListShows lists shows matching every where condition
func (s *SQLite) ListShows(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		ORDER_BY(table.Show.ID.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(whereAll(where))
	}

	shows := make([]*model.Show, 0)
	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, nil
}

// UpdateShowAnime flips the anime flag of a show
func (s *SQLite) UpdateShowAnime(ctx context.Context, id int64, anime bool) error {
	stmt := table.Show.
		UPDATE(table.Show.Anime).
		SET(sqlite.Bool(anime)).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show: %w", err)
	}

	return nil
}

// DeleteShow removes a show and its scene exceptions in one transaction. Episodes cascade.
func (s *SQLite) DeleteShow(ctx context.Context, id int64) error {
	show := table.Show.
		DELETE().
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	exceptions := table.SceneException.
		DELETE().
		WHERE(table.SceneException.ShowID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatements(ctx, show, exceptions)
	if err != nil {
		return fmt.Errorf("failed to delete show %d: %w", id, err)
	}

	return nil
}
