package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/migrations"
)

// DB is the SQLite handle shared by the store. A DB obtained from Begin is
// bound to a transaction and routes every statement through it.
type DB struct {
	conn   *sqlx.DB
	tx     *sqlx.Tx
	psql   squirrel.StatementBuilderType
	logger *logger.Logger
}

func newDB(conn *sqlx.DB, log *logger.Logger) *DB {
	return &DB{
		conn:   conn,
		psql:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger: log,
	}
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.conn.DB)
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Begin starts a transaction and returns a DB bound to it.
func (db *DB) Begin(ctx context.Context) (*DB, error) {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &DB{
		conn:   db.conn,
		tx:     tx,
		psql:   db.psql,
		logger: db.logger,
	}, nil
}

// RunInTx runs fn inside a transaction and commits when fn succeeds. When
// db is already bound to a transaction fn joins it.
func (db *DB) RunInTx(ctx context.Context, fn func(tx *DB) error) error {
	if db.tx != nil {
		return fn(db)
	}

	txDB, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer txDB.tx.Rollback()

	if err = fn(txDB); err != nil {
		return err
	}

	if err = txDB.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) executor() sqlx.ExtContext {
	if db.tx != nil {
		return db.tx
	}
	return db.conn
}

func (db *DB) get(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlx.GetContext(ctx, db.executor(), dest, query, args...)
}

func (db *DB) selectAll(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = sqlx.SelectContext(ctx, db.executor(), dest, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (db *DB) exec(ctx context.Context, q squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.executor().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res, nil
}

// upsertReturning executes an INSERT ... ON CONFLICT ... RETURNING
// statement and scans the returned columns into dest.
func (db *DB) upsertReturning(ctx context.Context, q squirrel.Sqlizer, dest ...any) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = db.executor().QueryRowxContext(ctx, query, args...).Scan(dest...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
