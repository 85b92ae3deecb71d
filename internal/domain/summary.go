package domain

import (
	"strings"
	"time"
)

const (
	GroupSize      = 4
	SingleAmount   = 500
	GroupAmount    = 1600
	dateOfBirthFmt = "2006-01-02"
)

// TotalAttendees is fixed by registration type. The length of group_members
// is deliberately not consulted.
func TotalAttendees(t RegistrationType) int {
	if t == RegistrationSingle {
		return 1
	}
	return GroupSize
}

func AmountDue(t RegistrationType) int {
	if t == RegistrationSingle {
		return SingleAmount
	}
	return GroupAmount
}

// CalculatedAge returns the current year minus the birth year, ignoring month
// and day. It returns nil when dob is empty or unparsable.
func CalculatedAge(dob string, now time.Time) *int {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return nil
	}

	born, err := time.Parse(dateOfBirthFmt, dob)
	if err != nil {
		if born, err = time.Parse(time.RFC3339, dob); err != nil {
			return nil
		}
	}

	age := now.Year() - born.Year()
	return &age
}

// Summarize derives the dashboard view of a registration. Both read
// strategies go through it so the derived fields never diverge.
func Summarize(row RegistrationRow, now time.Time) RegistrationSummary {
	s := RegistrationSummary{
		Registration:         row.Registration,
		TotalAttendees:       TotalAttendees(row.RegistrationType),
		AmountDue:            AmountDue(row.RegistrationType),
		PaymentScreenshotURL: row.PaymentScreenshotURL,
		UPIReference:         row.UPIReference,
		RegistrationDate:     row.CreatedAt,
		CalculatedAge:        CalculatedAge(row.DateOfBirth, now),
		EntryStatus:          NotEntered,
		EntryTime:            row.EntryTime,
		SecurityOfficer:      row.SecurityOfficer,
		MemberEntries:        row.MemberEntries,
	}

	if s.GroupMembers == nil {
		s.GroupMembers = []GroupMember{}
	}

	if row.PaymentVerified != nil {
		s.PaymentVerified = *row.PaymentVerified
	}

	if row.EntryStatus != nil && row.EntryStatus.Valid() {
		s.EntryStatus = *row.EntryStatus
	}

	if s.MemberEntries == nil {
		s.MemberEntries = []MemberEntry{}
	}

	for _, m := range s.MemberEntries {
		if m.Entered {
			s.MembersEnteredCount++
		}
	}

	return s
}

// Matches reports whether the summary matches a dashboard search term.
// Ticket, name and email match case-insensitively, phone verbatim.
func (s RegistrationSummary) Matches(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}

	lower := strings.ToLower(term)

	return strings.Contains(strings.ToLower(s.TicketID), lower) ||
		strings.Contains(strings.ToLower(s.Name), lower) ||
		strings.Contains(strings.ToLower(s.Email), lower) ||
		strings.Contains(s.Phone, term)
}

func Stats(list []RegistrationSummary) RegistrationStats {
	var st RegistrationStats
	for _, s := range list {
		st.Total++
		st.TotalAttendees += s.TotalAttendees
		if s.PaymentVerified {
			st.PaymentVerified++
		}
		if s.EntryStatus == Entered {
			st.Entered++
		}
	}
	return st
}
