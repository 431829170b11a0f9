package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

// DBConnKey is the context key under which a pinned database connection is
// stored.
const DBConnKey contextKey = "db_conn"

// WithConn acquires a connection from the pool, pins it into the context,
// and runs fn with that context. Repositories pick the pinned connection up
// via ConnFromContext, so every query inside fn runs on the same session.
func WithConn(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return fn(context.WithValue(ctx, DBConnKey, conn))
}

// ConnFromContext retrieves the pinned database connection from context.
// It returns nil when the context carries no connection, in which case
// repositories fall back to the shared pool.
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	conn, _ := ctx.Value(DBConnKey).(*pgxpool.Conn)
	return conn
}
