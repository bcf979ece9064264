package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
)

// CreateSceneException stores an alternate name for a show
func (s *SQLite) CreateSceneException(ctx context.Context, exception model.SceneException) (int64, error) {
	insertColumns := table.SceneException.MutableColumns
	if exception.ID != 0 {
		insertColumns = table.SceneException.AllColumns
	}

	stmt := table.SceneException.
		INSERT(insertColumns).
		MODEL(exception)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create scene exception: %w", err)
	}

	return result.LastInsertId()
}

// ListSceneExceptions lists scene exceptions in insertion order
func (s *SQLite) ListSceneExceptions(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.SceneException, error) {
	stmt := table.SceneException.
		SELECT(table.SceneException.AllColumns).
		FROM(table.SceneException).
		ORDER_BY(table.SceneException.ID.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(whereAll(where))
	}

	exceptions := make([]*model.SceneException, 0)
	err := stmt.QueryContext(ctx, s.db, &exceptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene exceptions: %w", err)
	}

	return exceptions, nil
}

// DeleteSceneException removes a scene exception by id
func (s *SQLite) DeleteSceneException(ctx context.Context, id int64) error {
	stmt := table.SceneException.
		DELETE().
		WHERE(table.SceneException.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete scene exception: %w", err)
	}

	return nil
}
