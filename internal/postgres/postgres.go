package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	DSN      string
	MaxConns int32
	// Lazy skips the startup ping; the pool dials on first use.
	Lazy bool
}

func New(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	const op = "postgres.New"

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Lazy {
		return pool, nil
	}

	ctxPing, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pool, nil
}

// Handles is the process-wide pair of backend pools. Public runs as the
// anonymous role and only serves health checks; Service carries the
// elevated role used by every admin read and write.
type Handles struct {
	Public  *pgxpool.Pool
	Service *pgxpool.Pool
}

func NewHandles(ctx context.Context, publicDSN, serviceDSN string) (*Handles, error) {
	const op = "postgres.NewHandles"

	service, err := New(ctx, Config{DSN: serviceDSN, MaxConns: 10})
	if err != nil {
		return nil, fmt.Errorf("%s: service: %w", op, err)
	}

	public, err := New(ctx, Config{DSN: publicDSN, MaxConns: 2, Lazy: true})
	if err != nil {
		service.Close()
		return nil, fmt.Errorf("%s: public: %w", op, err)
	}

	return &Handles{Public: public, Service: service}, nil
}

func (h *Handles) Close() {
	h.Public.Close()
	h.Service.Close()
}
