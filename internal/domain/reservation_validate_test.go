package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is fixed so the advance-notice window is deterministic.
var testNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func validSubmission() *Reservation {
	return &Reservation{
		Type:    ReservationTypeExperience,
		SubType: SubTypeExperienceClassic,
		Name:    "Ana Kovac",
		Email:   "ana@example.com",
		Phone:   "+386 40 123 456",
		Date:    "2025-06-20",
		Time:    "18:30",
		Guests:  4,
	}
}

func fieldNames(errs []FieldError) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestValidateNewReservation_Valid(t *testing.T) {
	r := validSubmission()
	errs := ValidateNewReservation(r, testNow)
	require.Empty(t, errs)
}

func TestValidateNewReservation_Normalizes(t *testing.T) {
	r := validSubmission()
	r.Name = "  Ana Kovac "
	r.Email = " Ana@Example.COM "
	errs := ValidateNewReservation(r, testNow)
	require.Empty(t, errs)
	assert.Equal(t, "Ana Kovac", r.Name)
	assert.Equal(t, "ana@example.com", r.Email)
}

func TestValidateNewReservation_SubTypesByType(t *testing.T) {
	tests := []struct {
		name     string
		resType  ReservationType
		subType  ReservationSubType
		wantOK   bool
	}{
		{"business basic", ReservationTypeBusiness, SubTypeBusinessBasic, true},
		{"business high", ReservationTypeBusiness, SubTypeBusinessHigh, true},
		{"experience start", ReservationTypeExperience, SubTypeExperienceStart, true},
		{"experience classic", ReservationTypeExperience, SubTypeExperienceClassic, true},
		{"experience celebration", ReservationTypeExperience, SubTypeExperienceCelebration, true},
		{"cross-type: business with experience subtype", ReservationTypeBusiness, SubTypeExperienceStart, false},
		{"cross-type: experience with business subtype", ReservationTypeExperience, SubTypeBusinessHigh, false},
		{"unknown subtype", ReservationTypeBusiness, "business_premium", false},
		{"empty subtype", ReservationTypeExperience, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validSubmission()
			r.Type = tt.resType
			r.SubType = tt.subType
			errs := ValidateNewReservation(r, testNow)
			if tt.wantOK {
				assert.NotContains(t, fieldNames(errs), "sub_type")
			} else {
				assert.Contains(t, fieldNames(errs), "sub_type")
			}
		})
	}
}

func TestValidateNewReservation_InvalidTypeStillReportsUnknownSubType(t *testing.T) {
	r := validSubmission()
	r.Type = "private"
	r.SubType = "no_such_tier"
	errs := ValidateNewReservation(r, testNow)
	names := fieldNames(errs)
	assert.Contains(t, names, "type")
	assert.Contains(t, names, "sub_type")
}

func TestValidateNewReservation_InvalidTypeAcceptsAnyKnownSubType(t *testing.T) {
	// With an unusable type, membership cannot be assessed; only subtypes
	// outside the union of all known values are reported.
	r := validSubmission()
	r.Type = "private"
	r.SubType = SubTypeBusinessBasic
	errs := ValidateNewReservation(r, testNow)
	names := fieldNames(errs)
	assert.Contains(t, names, "type")
	assert.NotContains(t, names, "sub_type")
}

func TestValidateNewReservation_ExperienceAdvanceWindow(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		wantOK bool
	}{
		{"today rejected", "2025-06-10", false},
		{"tomorrow rejected", "2025-06-11", false},
		{"boundary today+2 accepted", "2025-06-12", true},
		{"today+3 accepted", "2025-06-13", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validSubmission()
			r.Date = tt.date
			errs := ValidateNewReservation(r, testNow)
			if tt.wantOK {
				require.Empty(t, errs)
			} else {
				assert.Contains(t, fieldNames(errs), "date")
			}
		})
	}
}

func TestValidateNewReservation_BusinessExemptFromAdvanceWindow(t *testing.T) {
	r := validSubmission()
	r.Type = ReservationTypeBusiness
	r.SubType = SubTypeBusinessHigh
	r.Date = "2025-06-11" // tomorrow
	errs := ValidateNewReservation(r, testNow)
	require.Empty(t, errs)
}

func TestValidateNewReservation_DateRules(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		message string
	}{
		{"missing", "", "date is required"},
		{"malformed", "20-06-2025", "date must be formatted YYYY-MM-DD"},
		{"past", "2025-06-09", "date must not be in the past"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validSubmission()
			r.Type = ReservationTypeBusiness
			r.SubType = SubTypeBusinessBasic
			r.Date = tt.date
			errs := ValidateNewReservation(r, testNow)
			require.Len(t, errs, 1)
			assert.Equal(t, "date", errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestValidateNewReservation_ContactAndFormatRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Reservation)
		field  string
	}{
		{"missing name", func(r *Reservation) { r.Name = "  " }, "name"},
		{"missing email", func(r *Reservation) { r.Email = "" }, "email"},
		{"bad email", func(r *Reservation) { r.Email = "not-an-email" }, "email"},
		{"missing phone", func(r *Reservation) { r.Phone = "" }, "phone"},
		{"bad phone", func(r *Reservation) { r.Phone = "call me" }, "phone"},
		{"missing time", func(r *Reservation) { r.Time = "" }, "time"},
		{"bad time format", func(r *Reservation) { r.Time = "7pm" }, "time"},
		{"hour out of range", func(r *Reservation) { r.Time = "24:00" }, "time"},
		{"zero guests", func(r *Reservation) { r.Guests = 0 }, "guests"},
		{"negative guests", func(r *Reservation) { r.Guests = -3 }, "guests"},
		{"too many guests", func(r *Reservation) { r.Guests = 21 }, "guests"},
		{"message too long", func(r *Reservation) { r.Message = strings.Repeat("x", MaxMessageLen+1) }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validSubmission()
			tt.mutate(r)
			errs := ValidateNewReservation(r, testNow)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestValidateNewReservation_AccumulatesAllFailures(t *testing.T) {
	r := &Reservation{}
	errs := ValidateNewReservation(r, testNow)
	names := fieldNames(errs)
	for _, want := range []string{"type", "sub_type", "name", "email", "phone", "date", "time", "guests"} {
		assert.Contains(t, names, want)
	}
}

func TestReservationStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ReservationStatus("not-a-real-status").Valid())
	assert.False(t, ReservationStatus("").Valid())
}
