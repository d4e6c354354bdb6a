package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a PostgreSQL connection pool and verifies connectivity.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return pool, nil
}

// PgEngine stores each collection as one jsonb document in a single
// collections table. It is an alternative to FileEngine for deployments
// that already run PostgreSQL; the repositories on top never notice the
// difference.
type PgEngine struct {
	pool *pgxpool.Pool
}

// NewPgEngine creates a PgEngine backed by the given pool. The collections
// table must exist; cmd/migrate creates it.
func NewPgEngine(pool *pgxpool.Pool) *PgEngine {
	return &PgEngine{pool: pool}
}

var _ Engine = (*PgEngine)(nil)

func (e *PgEngine) Load(ctx context.Context, name string) ([]byte, error) {
	if !knownCollection(name) {
		return nil, ErrUnknownCollection
	}
	var doc []byte
	err := e.pool.QueryRow(ctx,
		`SELECT doc FROM collections WHERE name = $1`, name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	return doc, nil
}

func (e *PgEngine) Save(ctx context.Context, name string, data []byte) error {
	if !knownCollection(name) {
		return ErrUnknownCollection
	}
	_, err := e.pool.Exec(ctx,
		`INSERT INTO collections (name, doc, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	return nil
}
