package httpgin

import (
	"time"

	"github.com/kirinyoku/entrydesk/internal/domain"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type EntryStatusRequest struct {
	TicketID        string `json:"ticket_id" binding:"required"`
	EntryStatus     string `json:"entry_status" binding:"required,entrystatus"`
	SecurityOfficer string `json:"security_officer" binding:"max=200"`
}

// MemberEntryRequest identifies the member by member_id, or for older
// clients by member_name, falling back to member_email.
type MemberEntryRequest struct {
	TicketID        string `json:"ticket_id" binding:"required"`
	MemberID        string `json:"member_id" binding:"omitempty,uuid"`
	MemberName      string `json:"member_name"`
	MemberEmail     string `json:"member_email"`
	Entered         *bool  `json:"entered" binding:"required"`
	SecurityOfficer string `json:"security_officer" binding:"max=200"`
}

type VerifyPaymentRequest struct {
	TicketID string `json:"ticket_id" binding:"required"`
	Verified *bool  `json:"verified" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type EntryStatusResponse struct {
	Message string             `json:"message"`
	Data    domain.EntryStatus `json:"data"`
}

type MemberEntryResponse struct {
	Message string               `json:"message"`
	Data    []domain.MemberEntry `json:"data"`
}

type VerifyPaymentResponse struct {
	Message string                     `json:"message"`
	Data    domain.PaymentVerification `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type DBHealthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
