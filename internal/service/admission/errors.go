package admission

import (
	"errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrMemberNotFound  = errors.New("ticket or member not found")
	ErrMemberAmbiguous = errors.New("member name is ambiguous")
)
