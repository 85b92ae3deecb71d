package postgresrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/entrydesk/internal/domain"
)

type EntryRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *EntryRepo) With(db DB) *EntryRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *EntryRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// UpdateStatus sets the ticket-level entry status. entry_time and
// security_officer are written only when upd.TouchAudit is set; otherwise
// they keep their previous values.
//
// Returns:
//   - *domain.EntryStatus: the updated row.
//   - error: repository.ErrNotFound if the ticket has no entry_status row.
func (r *EntryRepo) UpdateStatus(
	ctx context.Context,
	ticketID string,
	upd domain.EntryUpdate,
) (*domain.EntryStatus, error) {
	const op = "postgresrepo.EntryRepo.UpdateStatus"

	var (
		es     domain.EntryStatus
		status string
	)

	err := r.handle().QueryRow(ctx,
		`UPDATE entry_status
		 SET entry_status     = $2,
		     updated_at       = $3,
		     entry_time       = CASE WHEN $4::boolean THEN $5::timestamptz ELSE entry_time END,
		     security_officer = CASE WHEN $4::boolean THEN $6::text ELSE security_officer END
		 WHERE ticket_id = $1
		 RETURNING id, ticket_id, entry_status, entry_time, security_officer,
		           COALESCE(member_entries, '[]'::jsonb), created_at, updated_at`,
		ticketID, string(upd.Status), upd.UpdatedAt, upd.TouchAudit, upd.EntryTime, upd.SecurityOfficer,
	).Scan(
		&es.ID,
		&es.TicketID,
		&status,
		&es.EntryTime,
		&es.SecurityOfficer,
		&es.MemberEntries,
		&es.CreatedAt,
		&es.UpdatedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	es.EntryStatus = domain.EntryState(status)

	return &es, nil
}

// UpdateMemberEntry delegates to the update_member_entry function, which
// rewrites the member_entries array atomically.
//
// Returns:
//   - []domain.MemberEntry: the member entries after the update.
//   - error: repository.ErrNotFound if the ticket or member is unknown.
//   - error: repository.ErrConflict if the member name matches several members.
func (r *EntryRepo) UpdateMemberEntry(
	ctx context.Context,
	ticketID string,
	ref domain.MemberRef,
	entered bool,
	officer *string,
) ([]domain.MemberEntry, error) {
	const op = "postgresrepo.EntryRepo.UpdateMemberEntry"

	memberID := pgtype.UUID{Bytes: ref.ID, Valid: ref.ID != uuid.Nil}
	memberName := pgtype.Text{String: ref.Name, Valid: ref.Name != ""}

	var entries []domain.MemberEntry
	err := r.handle().QueryRow(ctx,
		`SELECT update_member_entry($1, $2, $3, $4, $5)`,
		ticketID, memberID, memberName, entered, officer,
	).Scan(&entries)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if entries == nil {
		entries = []domain.MemberEntry{}
	}

	return entries, nil
}
