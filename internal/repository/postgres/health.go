package postgresrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthRepo struct {
	pool *pgxpool.Pool
}

// Ping runs a trivial read as the anonymous role.
func (r *HealthRepo) Ping(ctx context.Context) error {
	const op = "postgresrepo.HealthRepo.Ping"

	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM registrations LIMIT 1`).Scan(&n); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
