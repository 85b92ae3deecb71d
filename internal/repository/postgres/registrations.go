package postgresrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/entrydesk/internal/domain"
)

type RegistrationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *RegistrationRepo) With(db DB) *RegistrationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *RegistrationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Both queries project the same column list so scanRegistrationRows can
// serve either of them.
const (
	listSummarySQL = `
		SELECT id, name, email, phone, COALESCE(date_of_birth::text, ''),
		       parent_husband_mobile, registration_type,
		       COALESCE(group_members, '[]'::jsonb), ticket_id, created_at,
		       payment_verified, payment_screenshot_url, upi_reference,
		       entry_status, entry_time, security_officer,
		       COALESCE(member_entries, '[]'::jsonb)
		FROM registration_summary
		ORDER BY registration_date DESC`

	listJoinedSQL = `
		SELECT r.id, r.name, r.email, r.phone, COALESCE(r.date_of_birth::text, ''),
		       r.parent_husband_mobile, r.registration_type,
		       COALESCE(r.group_members, '[]'::jsonb), r.ticket_id, r.created_at,
		       pv.verified, pv.payment_screenshot_url, pv.upi_reference,
		       es.entry_status, es.entry_time, es.security_officer,
		       COALESCE(es.member_entries, '[]'::jsonb)
		FROM registrations r
		LEFT JOIN payment_verifications pv ON pv.ticket_id = r.ticket_id
		LEFT JOIN entry_status es ON es.ticket_id = r.ticket_id
		ORDER BY r.created_at DESC`
)

// ListSummary reads the registration_summary view, newest first.
func (r *RegistrationRepo) ListSummary(ctx context.Context) ([]domain.RegistrationRow, error) {
	const op = "postgresrepo.RegistrationRepo.ListSummary"

	rows, err := r.handle().Query(ctx, listSummarySQL)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	out, err := scanRegistrationRows(rows)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// ListJoined reads the base tables directly. It is the fallback for when the
// view is missing or broken.
func (r *RegistrationRepo) ListJoined(ctx context.Context) ([]domain.RegistrationRow, error) {
	const op = "postgresrepo.RegistrationRepo.ListJoined"

	rows, err := r.handle().Query(ctx, listJoinedSQL)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	out, err := scanRegistrationRows(rows)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func scanRegistrationRows(rows pgx.Rows) ([]domain.RegistrationRow, error) {
	defer rows.Close()

	out := make([]domain.RegistrationRow, 0)
	for rows.Next() {
		var (
			row         domain.RegistrationRow
			regType     string
			entryStatus *string
		)

		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.Phone,
			&row.DateOfBirth,
			&row.ParentHusbandMobile,
			&regType,
			&row.GroupMembers,
			&row.TicketID,
			&row.CreatedAt,
			&row.PaymentVerified,
			&row.PaymentScreenshotURL,
			&row.UPIReference,
			&entryStatus,
			&row.EntryTime,
			&row.SecurityOfficer,
			&row.MemberEntries,
		); err != nil {
			return nil, err
		}

		row.RegistrationType = domain.RegistrationType(regType)
		if entryStatus != nil {
			st := domain.EntryState(*entryStatus)
			row.EntryStatus = &st
		}

		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
