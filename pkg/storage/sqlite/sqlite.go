package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite database given a path to the database file.
// Migrations are not applied until Migrate is called.
func New(filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// a single connection keeps in-memory databases shared between queries
	db.SetMaxOpenConns(1)

	return &SQLite{
		db: db,
	}, nil
}

// Migrate brings the schema up to date
func (s *SQLite) Migrate(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	err := runMigrations(ctx, s.db)
	if err != nil {
		log.Errorw("failed to migrate database", zap.Error(err))
		return err
	}

	return nil
}

// Close releases the underlying database
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	results, err := s.handleStatements(ctx, stmt)
	if err != nil {
		return nil, err
	}

	return results[0], nil
}

// handleStatements runs every statement in a single transaction. Nothing is
// committed unless all of them succeed.
func (s *SQLite) handleStatements(ctx context.Context, stmts ...sqlite.Statement) ([]sql.Result, error) {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return nil, err
	}

	results := make([]sql.Result, 0, len(stmts))
	for _, stmt := range stmts {
		result, err := stmt.ExecContext(ctx, tx)
		if err != nil {
			log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
			tx.Rollback()
			return nil, err
		}
		results = append(results, result)
	}

	return results, tx.Commit()
}

func whereAll(where []sqlite.BoolExpression) sqlite.BoolExpression {
	if len(where) == 1 {
		return where[0]
	}

	return sqlite.AND(where...)
}

func notFound(err error, what string) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return storage.ErrNotFound
	}

	return fmt.Errorf("failed to get %s: %w", what, err)
}
