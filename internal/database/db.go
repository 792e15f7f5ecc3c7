// Package database is the data access layer: a PostgreSQL connection pool
// that runs parameterized SQL and hands rows back as column maps.
package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Schema is the reference table layout. It is idempotent.
//
//go:embed schema.sql
var Schema string

// Querier runs a SQL template with positional ($1, $2, ...) parameters.
// Values are always bound by the driver, never formatted into the text.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (*Result, error)
}

// TxQuerier is a Querier that can also run a group of statements atomically.
type TxQuerier interface {
	Querier
	WithTx(ctx context.Context, fn func(q Querier) error) error
}

// Config holds pool settings.
type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB wraps the process-wide connection pool.
type DB struct {
	sql *sql.DB
}

var _ TxQuerier = (*DB)(nil)

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{sql: sqlDB}, nil
}

// SQL exposes the underlying pool, e.g. for stats collection.
func (db *DB) SQL() *sql.DB {
	return db.sql
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close releases the pool.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Query implements Querier.
func (db *DB) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	return runQuery(ctx, db.sql, query, args)
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(txQuerier{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type txQuerier struct {
	tx *sql.Tx
}

func (q txQuerier) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	return runQuery(ctx, q.tx, query, args)
}

// queryContexter is satisfied by *sql.DB and *sql.Tx.
type queryContexter interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func runQuery(ctx context.Context, q queryContexter, query string, args []any) (*Result, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := &Result{Rows: []Row{}}
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = normalize(values[i])
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	res.RowCount = len(res.Rows)
	return res, nil
}

// normalize copies driver-owned byte slices so rows outlive the cursor.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
