package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions tune the pgx pool. Zero values keep the pgx defaults.
type PoolOptions struct {
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// NewPool creates a PostgreSQL connection pool and checks it with a ping
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if opts.MaxConns > 0 {
		maxConns := opts.MaxConns
		if maxConns > math.MaxInt32 {
			maxConns = math.MaxInt32
		}
		config.MaxConns = int32(maxConns)
		config.MinConns = min(DefaultMinConnections, config.MaxConns)
	}
	if opts.MaxIdleTime > 0 {
		config.MaxConnIdleTime = opts.MaxIdleTime
	}
	if opts.MaxLifetime > 0 {
		config.MaxConnLifetime = opts.MaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", config.MaxConns,
		"min_conns", config.MinConns)
	return pool, nil
}
