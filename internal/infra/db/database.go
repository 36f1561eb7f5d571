package db

import (
	"context"
	"fmt"
	"time"

	"stay-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the pool without dialing. Callers Ping when they need to know the server answers.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool for %s/%s: %w", cfg.Host, cfg.DBName, err)
	}
	return pool, nil
}

// ConnectAndPing is Connect followed by a bounded Ping; the pool is closed on failure.
func ConnectAndPing(ctx context.Context, cfg config.DBConfig, timeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database %s/%s: %w", cfg.Host, cfg.DBName, err)
	}
	return pool, nil
}
