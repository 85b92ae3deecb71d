package postgresrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/entrydesk/internal/domain"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PaymentRepo) With(db DB) *PaymentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PaymentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// UpdateVerified flips the verified flag and touches nothing else.
func (r *PaymentRepo) UpdateVerified(
	ctx context.Context,
	ticketID string,
	verified bool,
) (*domain.PaymentVerification, error) {
	const op = "postgresrepo.PaymentRepo.UpdateVerified"

	var pv domain.PaymentVerification
	err := r.handle().QueryRow(ctx,
		`UPDATE payment_verifications
		 SET verified = $2
		 WHERE ticket_id = $1
		 RETURNING id, ticket_id, payment_screenshot_url, upi_reference, verified, created_at`,
		ticketID, verified,
	).Scan(
		&pv.ID,
		&pv.TicketID,
		&pv.PaymentScreenshotURL,
		&pv.UPIReference,
		&pv.Verified,
		&pv.CreatedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &pv, nil
}
