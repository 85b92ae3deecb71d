// Package memory is an in-process stand-in for the postgres repositories.
// It backs the service and transport tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/entrydesk/internal/domain"
	"github.com/kirinyoku/entrydesk/internal/repository"
	postgresrepo "github.com/kirinyoku/entrydesk/internal/repository/postgres"
	"github.com/kirinyoku/entrydesk/internal/service/admission"
	"github.com/kirinyoku/entrydesk/internal/uow"
)

type Store struct {
	mu            sync.Mutex
	registrations []domain.Registration
	payments      map[string]domain.PaymentVerification
	entries       map[string]domain.EntryStatus

	// SummaryErr and JoinedErr make the matching read strategy fail.
	SummaryErr error
	JoinedErr  error
	// WriteErr makes every write fail.
	WriteErr error

	Writes       int
	SummaryCalls int
	JoinedCalls  int
}

func New() *Store {
	return &Store{
		payments: make(map[string]domain.PaymentVerification),
		entries:  make(map[string]domain.EntryStatus),
	}
}

// Add stores a registration with optional payment and entry rows.
func (s *Store) Add(r domain.Registration, pv *domain.PaymentVerification, es *domain.EntryStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.registrations = append(s.registrations, r)

	if pv != nil {
		pv.TicketID = r.TicketID
		s.payments[r.TicketID] = *pv
	}
	if es != nil {
		es.TicketID = r.TicketID
		if es.EntryStatus == "" {
			es.EntryStatus = domain.NotEntered
		}
		s.entries[r.TicketID] = *es
	}
}

func (s *Store) Entry(ticketID string) (domain.EntryStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	es, ok := s.entries[ticketID]
	return es, ok
}

func (s *Store) Payment(ticketID string) (domain.PaymentVerification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pv, ok := s.payments[ticketID]
	return pv, ok
}

// Do runs fn and then its after-commit hooks, mirroring uow.UoW.
func (s *Store) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error,
) error {
	var hooks []uow.AfterCommit

	if err := fn(ctx, nil, func(h uow.AfterCommit) { hooks = append(hooks, h) }); err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}

func (s *Store) Entries(postgresrepo.DB) admission.EntryRepository {
	return entryRepo{s: s}
}

func (s *Store) Payments(postgresrepo.DB) admission.PaymentRepository {
	return paymentRepo{s: s}
}

func (s *Store) ListSummary(context.Context) ([]domain.RegistrationRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SummaryCalls++
	if s.SummaryErr != nil {
		return nil, s.SummaryErr
	}

	return s.rows(), nil
}

func (s *Store) ListJoined(context.Context) ([]domain.RegistrationRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.JoinedCalls++
	if s.JoinedErr != nil {
		return nil, s.JoinedErr
	}

	return s.rows(), nil
}

func (s *Store) rows() []domain.RegistrationRow {
	out := make([]domain.RegistrationRow, 0, len(s.registrations))
	for _, r := range s.registrations {
		row := domain.RegistrationRow{Registration: r}

		if pv, ok := s.payments[r.TicketID]; ok {
			verified := pv.Verified
			row.PaymentVerified = &verified
			row.PaymentScreenshotURL = pv.PaymentScreenshotURL
			row.UPIReference = pv.UPIReference
		}

		if es, ok := s.entries[r.TicketID]; ok {
			status := es.EntryStatus
			row.EntryStatus = &status
			row.EntryTime = es.EntryTime
			row.SecurityOfficer = es.SecurityOfficer
			row.MemberEntries = append([]domain.MemberEntry(nil), es.MemberEntries...)
		}

		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

type entryRepo struct {
	s *Store
}

func (r entryRepo) UpdateStatus(_ context.Context, ticketID string, upd domain.EntryUpdate) (*domain.EntryStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.WriteErr != nil {
		return nil, r.s.WriteErr
	}

	es, ok := r.s.entries[ticketID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	es.EntryStatus = upd.Status
	es.UpdatedAt = upd.UpdatedAt
	if upd.TouchAudit {
		es.EntryTime = upd.EntryTime
		es.SecurityOfficer = upd.SecurityOfficer
	}

	r.s.entries[ticketID] = es
	r.s.Writes++

	return &es, nil
}

func (r entryRepo) UpdateMemberEntry(
	_ context.Context,
	ticketID string,
	ref domain.MemberRef,
	entered bool,
	officer *string,
) ([]domain.MemberEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.WriteErr != nil {
		return nil, r.s.WriteErr
	}

	es, ok := r.s.entries[ticketID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	match := func(m domain.MemberEntry) bool {
		if ref.ID != uuid.Nil {
			return m.ID == ref.ID
		}
		return m.Name == ref.Name
	}

	idx := -1
	for i, m := range es.MemberEntries {
		if !match(m) {
			continue
		}
		if idx >= 0 {
			return nil, repository.ErrConflict
		}
		idx = i
	}
	if idx < 0 {
		return nil, repository.ErrNotFound
	}

	entries := append([]domain.MemberEntry(nil), es.MemberEntries...)
	entries[idx].Entered = entered
	if entered {
		now := time.Now().UTC()
		entries[idx].EntryTime = &now
		entries[idx].SecurityOfficer = officer
	}

	es.MemberEntries = entries
	r.s.entries[ticketID] = es
	r.s.Writes++

	return append([]domain.MemberEntry(nil), entries...), nil
}

type paymentRepo struct {
	s *Store
}

func (r paymentRepo) UpdateVerified(_ context.Context, ticketID string, verified bool) (*domain.PaymentVerification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.WriteErr != nil {
		return nil, r.s.WriteErr
	}

	pv, ok := r.s.payments[ticketID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	pv.Verified = verified
	r.s.payments[ticketID] = pv
	r.s.Writes++

	return &pv, nil
}
