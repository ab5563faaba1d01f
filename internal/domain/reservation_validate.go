package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	// MaxGuests is the largest party size accepted through the public form.
	MaxGuests = 20
	// MaxMessageLen bounds the optional free-text message.
	MaxMessageLen = 1000
	// ExperienceAdvanceDays is the minimum notice for experience bookings.
	// The boundary is inclusive: a date exactly this many days ahead passes.
	ExperienceAdvanceDays = 2
)

var (
	reservationEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reservationPhoneRegexp = regexp.MustCompile(`^\+?[0-9 ()/-]{6,20}$`)
	reservationTimeRegexp  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// DateLayout is the wire and storage format for reservation dates.
const DateLayout = "2006-01-02"

// ValidateNewReservation checks a reservation submission against all creation
// rules and returns every failing field, not just the first. It normalizes
// contact fields in place (trimmed, email lowercased) and is pure otherwise:
// no I/O, the caller supplies the current time.
func ValidateNewReservation(r *Reservation, now time.Time) []FieldError {
	var errs []FieldError

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)

	allowedSubs, typeOK := SubTypesByType[r.Type]
	if !typeOK {
		errs = append(errs, FieldError{Field: "type", Message: "type must be \"business\" or \"experience\""})
	}

	if typeOK {
		if !containsSubType(allowedSubs, r.SubType) {
			errs = append(errs, FieldError{Field: "sub_type", Message: "sub_type is not valid for the given type"})
		}
	} else if !knownSubType(r.SubType) {
		// Type is unusable, but an unknown subtype is still reported.
		errs = append(errs, FieldError{Field: "sub_type", Message: "unknown sub_type"})
	}

	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !reservationEmailRegexp.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email format"})
	}
	if r.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone is required"})
	} else if !reservationPhoneRegexp.MatchString(r.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "invalid phone format"})
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if r.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	} else if date, err := time.ParseInLocation(DateLayout, r.Date, time.UTC); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "date must be formatted YYYY-MM-DD"})
	} else if date.Before(today) {
		errs = append(errs, FieldError{Field: "date", Message: "date must not be in the past"})
	} else if r.Type == ReservationTypeExperience && date.Before(today.AddDate(0, 0, ExperienceAdvanceDays)) {
		errs = append(errs, FieldError{Field: "date", Message: "experience reservations require at least 2 days notice"})
	}

	if r.Time == "" {
		errs = append(errs, FieldError{Field: "time", Message: "time is required"})
	} else if !reservationTimeRegexp.MatchString(r.Time) {
		errs = append(errs, FieldError{Field: "time", Message: "time must be formatted HH:MM"})
	}

	if r.Guests < 1 {
		errs = append(errs, FieldError{Field: "guests", Message: "guests must be at least 1"})
	} else if r.Guests > MaxGuests {
		errs = append(errs, FieldError{Field: "guests", Message: "guests must be at most 20"})
	}

	if len(r.Message) > MaxMessageLen {
		errs = append(errs, FieldError{Field: "message", Message: "message is too long"})
	}

	return errs
}

func containsSubType(subs []ReservationSubType, s ReservationSubType) bool {
	for _, v := range subs {
		if v == s {
			return true
		}
	}
	return false
}

func knownSubType(s ReservationSubType) bool {
	for _, subs := range SubTypesByType {
		if containsSubType(subs, s) {
			return true
		}
	}
	return false
}
