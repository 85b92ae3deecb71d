package postgresrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store groups the repositories. pool runs as the service role; public runs
// as the anonymous role.
type Store struct {
	pool   *pgxpool.Pool
	public *pgxpool.Pool
}

func NewStore(pool, public *pgxpool.Pool) *Store {
	return &Store{
		pool:   pool,
		public: public,
	}
}

func (s *Store) RunTx(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}

	if opts != nil {
		txOpts.IsoLevel = opts.IsoLevel
		txOpts.AccessMode = opts.AccessMode
		txOpts.DeferrableMode = opts.DeferrableMode
	}

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) Registrations() *RegistrationRepo { return &RegistrationRepo{pool: s.pool} }
func (s *Store) Entries() *EntryRepo              { return &EntryRepo{pool: s.pool} }
func (s *Store) Payments() *PaymentRepo           { return &PaymentRepo{pool: s.pool} }
func (s *Store) Health() *HealthRepo              { return &HealthRepo{pool: s.public} }
