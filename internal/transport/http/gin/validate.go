package httpgin

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kirinyoku/entrydesk/internal/domain"
)

var registerOnce sync.Once

// registerValidators adds the custom binding tags to gin's validator engine.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("entrystatus", validateEntryStatus)
	})
}

func validateEntryStatus(fl validator.FieldLevel) bool {
	return domain.EntryState(fl.Field().String()).Valid()
}

// bindingMessage turns a binding error into a short client-facing message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonField(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "entrystatus":
		return fmt.Sprintf("%s must be %s or %s", field, domain.Entered, domain.NotEntered)
	case "uuid":
		return field + " must be a UUID"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

var jsonFields = map[string]string{
	"TicketID":        "ticket_id",
	"EntryStatus":     "entry_status",
	"SecurityOfficer": "security_officer",
	"MemberID":        "member_id",
	"Entered":         "entered",
	"Verified":        "verified",
}

func jsonField(name string) string {
	if f, ok := jsonFields[name]; ok {
		return f
	}
	return name
}
