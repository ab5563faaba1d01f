package domain

import (
	"context"
	"time"
)

// ReservationType classifies the purpose of a booking.
type ReservationType string

const (
	ReservationTypeBusiness   ReservationType = "business"
	ReservationTypeExperience ReservationType = "experience"
)

// ReservationSubType is the package tier within a reservation type.
type ReservationSubType string

const (
	SubTypeBusinessBasic         ReservationSubType = "business_basic"
	SubTypeBusinessHigh          ReservationSubType = "business_high"
	SubTypeExperienceStart       ReservationSubType = "experience_start"
	SubTypeExperienceClassic     ReservationSubType = "experience_classic"
	SubTypeExperienceCelebration ReservationSubType = "experience_celebration"
)

// SubTypesByType maps each reservation type to its permitted subtypes.
var SubTypesByType = map[ReservationType][]ReservationSubType{
	ReservationTypeBusiness:   {SubTypeBusinessBasic, SubTypeBusinessHigh},
	ReservationTypeExperience: {SubTypeExperienceStart, SubTypeExperienceClassic, SubTypeExperienceCelebration},
}

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRejected ReservationStatus = "rejected"
)

// Valid reports whether s is one of the defined lifecycle states.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Reservation is a single booking request for the venue.
// Date is an ISO calendar date (YYYY-MM-DD), Time a 24-hour wall clock (HH:MM).
// swagger:model Reservation
type Reservation struct {
	ID        string             `json:"id"`
	Type      ReservationType    `json:"type"`
	SubType   ReservationSubType `json:"sub_type"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Date      string             `json:"date"`
	Time      string             `json:"time"`
	Guests    int                `json:"guests"`
	Message   string             `json:"message,omitempty"`
	Status    ReservationStatus  `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ReservationRepository defines the interface for reservation storage.
type ReservationRepository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	// List returns all reservations ordered by date ascending, then time ascending.
	List(ctx context.Context) ([]*Reservation, error)
	// FindByDateMinGuestsStatus returns at most one reservation on date with
	// guests strictly greater than minGuests and the given status, or ErrNotFound.
	FindByDateMinGuestsStatus(ctx context.Context, date string, minGuests int, status ReservationStatus) (*Reservation, error)
	UpdateStatus(ctx context.Context, id string, status ReservationStatus) (*Reservation, error)
	Delete(ctx context.Context, id string) error
}

// ReservationService defines the business logic for the reservation lifecycle.
type ReservationService interface {
	Create(ctx context.Context, r *Reservation) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	// CheckAvailability reports whether date is free of large approved bookings.
	CheckAvailability(ctx context.Context, date string) (available bool, err error)
	SetStatus(ctx context.Context, id string, status string) (*Reservation, error)
	Delete(ctx context.Context, id string) error
}
