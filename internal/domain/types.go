package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationType string

const (
	RegistrationSingle RegistrationType = "SINGLE"
	RegistrationGroup  RegistrationType = "GROUP"
)

type EntryState string

const (
	NotEntered EntryState = "NOT_ENTERED"
	Entered    EntryState = "ENTERED"
)

// Valid reports whether s is one of the known entry states.
func (s EntryState) Valid() bool {
	return s == NotEntered || s == Entered
}

type GroupMember struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth string    `json:"date_of_birth"`
}

type Registration struct {
	ID                  uuid.UUID        `json:"id"`
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	DateOfBirth         string           `json:"date_of_birth"`
	ParentHusbandMobile *string          `json:"parent_husband_mobile"`
	RegistrationType    RegistrationType `json:"registration_type"`
	GroupMembers        []GroupMember    `json:"group_members"`
	TicketID            string           `json:"ticket_id"`
	CreatedAt           time.Time        `json:"created_at"`
}

type PaymentVerification struct {
	ID                   uuid.UUID `json:"id"`
	TicketID             string    `json:"ticket_id"`
	PaymentScreenshotURL *string   `json:"payment_screenshot_url"`
	UPIReference         *string   `json:"upi_reference"`
	Verified             bool      `json:"verified"`
	CreatedAt            time.Time `json:"created_at"`
}

// MemberEntry tracks gate entry for one member of a group ticket.
type MemberEntry struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Entered         bool       `json:"entered"`
	EntryTime       *time.Time `json:"entry_time,omitempty"`
	SecurityOfficer *string    `json:"security_officer,omitempty"`
}

type EntryStatus struct {
	ID              uuid.UUID     `json:"id"`
	TicketID        string        `json:"ticket_id"`
	EntryStatus     EntryState    `json:"entry_status"`
	EntryTime       *time.Time    `json:"entry_time"`
	SecurityOfficer *string       `json:"security_officer"`
	MemberEntries   []MemberEntry `json:"member_entries"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// EntryUpdate is one write to a ticket's entry status. EntryTime and
// SecurityOfficer are applied only when TouchAudit is set.
type EntryUpdate struct {
	Status          EntryState
	UpdatedAt       time.Time
	TouchAudit      bool
	EntryTime       *time.Time
	SecurityOfficer *string
}

// MemberRef identifies one member inside a group ticket. ID wins over Name
// when both are set.
type MemberRef struct {
	ID   uuid.UUID
	Name string
}

// RegistrationRow is a registration joined with its payment verification and
// entry status. Child columns are nil when the related row is absent.
type RegistrationRow struct {
	Registration
	PaymentVerified      *bool
	PaymentScreenshotURL *string
	UPIReference         *string
	EntryStatus          *EntryState
	EntryTime            *time.Time
	SecurityOfficer      *string
	MemberEntries        []MemberEntry
}

type RegistrationSummary struct {
	Registration
	TotalAttendees       int           `json:"total_attendees"`
	AmountDue            int           `json:"amount_due"`
	PaymentVerified      bool          `json:"payment_verified"`
	PaymentScreenshotURL *string       `json:"payment_screenshot_url"`
	UPIReference         *string       `json:"upi_reference"`
	RegistrationDate     time.Time     `json:"registration_date"`
	CalculatedAge        *int          `json:"calculated_age"`
	EntryStatus          EntryState    `json:"entry_status"`
	EntryTime            *time.Time    `json:"entry_time"`
	SecurityOfficer      *string       `json:"security_officer"`
	MemberEntries        []MemberEntry `json:"member_entries"`
	MembersEnteredCount  int           `json:"members_entered_count"`
}

type RegistrationStats struct {
	Total           int `json:"total"`
	PaymentVerified int `json:"payment_verified"`
	Entered         int `json:"entered"`
	TotalAttendees  int `json:"total_attendees"`
}

type ChangeType string

const (
	ChangeEntryStatus ChangeType = "entry_status"
	ChangeMemberEntry ChangeType = "member_entry"
	ChangePayment     ChangeType = "payment"
)

// TicketChange is broadcast after a mutation on a ticket has been committed.
type TicketChange struct {
	Type     ChangeType `json:"type"`
	TicketID string     `json:"ticket_id"`
	TsUnix   int64      `json:"ts_unix"`
}
