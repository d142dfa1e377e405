package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// PostgresDB is a throwaway PostgreSQL database with an open pool. Both are
// released through t.Cleanup.
type PostgresDB struct {
	DSN  string
	Pool *pgxpool.Pool
}

// NewPostgresContainer starts PostgreSQL and connects a pool to it.
func NewPostgresContainer(ctx context.Context, t *testing.T) *PostgresDB {
	t.Helper()

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("covey_test"),
		postgres.WithUsername("covey"),
		postgres.WithPassword("covey"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(stopCtx); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "postgres connection string")

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "open pool")
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx), "ping postgres")

	return &PostgresDB{DSN: dsn, Pool: pool}
}
