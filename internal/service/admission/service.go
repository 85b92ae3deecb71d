package admission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/entrydesk/internal/domain"
	"github.com/kirinyoku/entrydesk/internal/repository"
	postgresrepo "github.com/kirinyoku/entrydesk/internal/repository/postgres"
	"github.com/kirinyoku/entrydesk/internal/uow"
)

const DefaultOfficer = "Security"

type Config struct {
	// ResetClearsAudit makes a reset to NOT_ENTERED also clear entry_time
	// and security_officer. By default both are kept.
	ResetClearsAudit bool
}

type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error) error
}

type EntryRepository interface {
	UpdateStatus(ctx context.Context, ticketID string, upd domain.EntryUpdate) (*domain.EntryStatus, error)
	UpdateMemberEntry(ctx context.Context, ticketID string, ref domain.MemberRef, entered bool, officer *string) ([]domain.MemberEntry, error)
}

type PaymentRepository interface {
	UpdateVerified(ctx context.Context, ticketID string, verified bool) (*domain.PaymentVerification, error)
}

// Repositories binds repositories to the transaction of a unit of work.
type Repositories interface {
	Entries(tx postgresrepo.DB) EntryRepository
	Payments(tx postgresrepo.DB) PaymentRepository
}

type Notifier interface {
	PublishTicketChanged(ctx context.Context, change domain.TicketChange) error
}

type Service struct {
	tx       Transactor
	repos    Repositories
	notifier Notifier
	logger   *slog.Logger
	cfg      Config
	now      func() time.Time
}

func New(
	tx Transactor,
	repos Repositories,
	notifier Notifier,
	logger *slog.Logger,
	cfg Config,
) *Service {
	return &Service{
		tx:       tx,
		repos:    repos,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

type storeRepositories struct {
	store *postgresrepo.Store
}

// NewRepositories adapts a postgres store to Repositories.
func NewRepositories(store *postgresrepo.Store) Repositories {
	return storeRepositories{store: store}
}

func (r storeRepositories) Entries(tx postgresrepo.DB) EntryRepository {
	return r.store.Entries().With(tx)
}

func (r storeRepositories) Payments(tx postgresrepo.DB) PaymentRepository {
	return r.store.Payments().With(tx)
}

// SetEntryStatus marks a whole ticket as entered or not entered.
//
// Parameters:
//   - ctx: request-scoped context.
//   - ticketID: ticket to update.
//   - status: domain.Entered or domain.NotEntered.
//   - officer: security officer recording the entry; defaults to DefaultOfficer.
//
// Returns:
//   - *domain.EntryStatus: the updated entry status.
//   - error: admission.ErrInvalidInput if ticketID or status is missing or invalid.
//   - error: admission.ErrTicketNotFound if the ticket has no entry status.
func (s *Service) SetEntryStatus(
	ctx context.Context,
	ticketID string,
	status domain.EntryState,
	officer string,
) (*domain.EntryStatus, error) {
	const op = "service.admission.SetEntryStatus"

	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" || status == "" {
		return nil, fmt.Errorf("%s: %w: ticket ID and entry status are required", op, ErrInvalidInput)
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w: entry status must be %s or %s", op, ErrInvalidInput, domain.Entered, domain.NotEntered)
	}

	now := s.now().UTC()
	upd := domain.EntryUpdate{
		Status:    status,
		UpdatedAt: now,
	}

	switch {
	case status == domain.Entered:
		o := officerOrDefault(officer)
		upd.TouchAudit = true
		upd.EntryTime = &now
		upd.SecurityOfficer = &o
	case s.cfg.ResetClearsAudit:
		upd.TouchAudit = true
	}

	var out *domain.EntryStatus
	err := s.tx.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		es, err := s.repos.Entries(tx).UpdateStatus(ctx, ticketID, upd)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrTicketNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		out = es
		after(s.publish(domain.ChangeEntryStatus, ticketID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SetMemberEntry marks one member of a group ticket as entered or not.
// The member is found by ref.ID when set, otherwise by ref.Name.
//
// Returns:
//   - []domain.MemberEntry: all member entries of the ticket after the update.
//   - error: admission.ErrInvalidInput if ticketID or the member reference is missing.
//   - error: admission.ErrMemberNotFound if the ticket or member is unknown.
//   - error: admission.ErrMemberAmbiguous if the name matches several members.
func (s *Service) SetMemberEntry(
	ctx context.Context,
	ticketID string,
	ref domain.MemberRef,
	entered bool,
	officer string,
) ([]domain.MemberEntry, error) {
	const op = "service.admission.SetMemberEntry"

	ticketID = strings.TrimSpace(ticketID)
	ref.Name = strings.TrimSpace(ref.Name)

	if ticketID == "" {
		return nil, fmt.Errorf("%s: %w: ticket ID is required", op, ErrInvalidInput)
	}

	if ref.ID == uuid.Nil && ref.Name == "" {
		return nil, fmt.Errorf("%s: %w: member id, name or email is required", op, ErrInvalidInput)
	}

	var officerPtr *string
	if entered {
		o := officerOrDefault(officer)
		officerPtr = &o
	}

	var out []domain.MemberEntry
	err := s.tx.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		entries, err := s.repos.Entries(tx).UpdateMemberEntry(ctx, ticketID, ref, entered, officerPtr)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return fmt.Errorf("%s: %w", op, ErrMemberNotFound)
			case errors.Is(err, repository.ErrConflict):
				return fmt.Errorf("%s: %w", op, ErrMemberAmbiguous)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		out = entries
		after(s.publish(domain.ChangeMemberEntry, ticketID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SetPaymentVerified sets the verified flag of a ticket's payment.
//
// Returns:
//   - *domain.PaymentVerification: the updated payment verification.
//   - error: admission.ErrInvalidInput if ticketID is missing.
//   - error: admission.ErrTicketNotFound if the ticket has no payment verification.
func (s *Service) SetPaymentVerified(
	ctx context.Context,
	ticketID string,
	verified bool,
) (*domain.PaymentVerification, error) {
	const op = "service.admission.SetPaymentVerified"

	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return nil, fmt.Errorf("%s: %w: ticket ID is required", op, ErrInvalidInput)
	}

	var out *domain.PaymentVerification
	err := s.tx.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		pv, err := s.repos.Payments(tx).UpdateVerified(ctx, ticketID, verified)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrTicketNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		out = pv
		after(s.publish(domain.ChangePayment, ticketID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Service) publish(kind domain.ChangeType, ticketID string) uow.AfterCommit {
	return func(ctx context.Context) {
		if s.notifier == nil {
			return
		}

		change := domain.TicketChange{
			Type:     kind,
			TicketID: ticketID,
			TsUnix:   s.now().Unix(),
		}

		if err := s.notifier.PublishTicketChanged(ctx, change); err != nil {
			s.logger.Warn("failed to publish ticket change",
				"type", kind,
				"ticket_id", ticketID,
				"error", err,
			)
		}
	}
}

func officerOrDefault(officer string) string {
	if o := strings.TrimSpace(officer); o != "" {
		return o
	}
	return DefaultOfficer
}
