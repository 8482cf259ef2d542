package database

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/config"
	"github.com/stemsi/arabic-learning-backend/internal/logger"
)

// Querier runs a parameterized statement. The shared pool and an open
// transaction both satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Transactor runs fn inside a single transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(q Querier) error) error
}

// DB is the process-wide data-access handle. Its pool is created on first
// use and reused by every request; only process entrypoints call Close.
type DB struct {
	cfg *config.Config
	log zerolog.Logger

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// New returns a DB without connecting.
func New(cfg *config.Config, log zerolog.Logger) *DB {
	return &DB{cfg: cfg, log: logger.Component(log, "database")}
}

// Pool returns the shared pool, creating it if needed. A failed attempt is
// not cached, so the next caller retries.
func (d *DB) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pool != nil {
		return d.pool, nil
	}
	pool, err := NewPostgresPool(ctx, d.cfg, d.log)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	d.pool = pool
	return pool, nil
}

// Query executes sql on the shared pool. It never opens a transaction.
func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool, err := d.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}

// WithTransaction acquires one connection, begins a transaction and runs fn
// with it. The transaction commits when fn returns nil and rolls back
// otherwise; the connection is always released.
func (d *DB) WithTransaction(ctx context.Context, fn func(q Querier) error) error {
	pool, err := d.Pool(ctx)
	if err != nil {
		return err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			d.log.Warn().Err(rbErr).Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// Close tears the pool down. Request handlers must not call it.
func (d *DB) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
		d.log.Info().Msg("PostgreSQL pool closed")
	}
}

// InTransaction runs fn through t and returns fn's value.
func InTransaction[T any](ctx context.Context, t Transactor, fn func(q Querier) (T, error)) (T, error) {
	var out T
	err := t.WithTransaction(ctx, func(q Querier) error {
		v, err := fn(q)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// Ping checks connectivity, creating the pool if it does not exist yet.
func (d *DB) Ping(ctx context.Context) error {
	pool, err := d.Pool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}
