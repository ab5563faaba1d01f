package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cafesite/internal/domain"
)

// largePartyGuests is the whole-venue exclusivity threshold: a date with an
// approved reservation for strictly more guests than this blocks all further
// large bookings on that date.
const largePartyGuests = 15

type reservationService struct {
	repo           domain.ReservationRepository
	emailService   domain.EmailService
	adminEmail     string
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewReservationService creates a ReservationService. adminEmail receives the
// "new reservation" notification; emailService may be nil to disable all
// outbound mail (tests, local development).
func NewReservationService(repo domain.ReservationRepository, emailService domain.EmailService, adminEmail string, logger *slog.Logger, timeout time.Duration) domain.ReservationService {
	return &reservationService{
		repo:           repo,
		emailService:   emailService,
		adminEmail:     adminEmail,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *reservationService) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if fieldErrs := domain.ValidateNewReservation(res, s.now()); len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}

	now := s.now()
	res.Status = domain.StatusPending
	res.CreatedAt = now
	res.UpdatedAt = now
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	// Best effort: the submission is stored either way.
	if s.emailService != nil && s.adminEmail != "" {
		data := &domain.ReservationReceivedEmailData{
			Name:    res.Name,
			Email:   res.Email,
			Phone:   res.Phone,
			Type:    string(res.Type),
			SubType: string(res.SubType),
			Date:    res.Date,
			Time:    res.Time,
			Guests:  res.Guests,
			Message: res.Message,
		}
		if err := s.emailService.SendReservationReceived(ctx, data); err != nil {
			s.logger.Warn("admin notification failed", "reservation_id", res.ID, "err", err)
		}
	}
	return res, nil
}

func (s *reservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reservations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if reservations == nil {
		reservations = []*domain.Reservation{}
	}
	return reservations, nil
}

// CheckAvailability reports whether date still accepts large bookings. Only
// an approved reservation with more than largePartyGuests guests blocks the
// date; pending ones do not. A store failure is returned as an error, never
// read as "available".
func (s *reservationService) CheckAvailability(ctx context.Context, date string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return false, domain.ErrInvalidInput
	}
	_, err := s.repo.FindByDateMinGuestsStatus(ctx, date, largePartyGuests, domain.StatusApproved)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("check availability: %w", err)
	}
	return false, nil
}

// SetStatus applies an admin-requested status change. The new status is
// persisted first; only after a successful write is the matching guest email
// attempted, and a mail failure never rolls back or surfaces — the committed
// state is the source of truth. Transitions out of approved/rejected are not
// guarded, so an admin can correct a mistaken decision.
func (s *reservationService) SetStatus(ctx context.Context, id string, status string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	newStatus := domain.ReservationStatus(status)
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update status: %w", err)
	}

	if s.emailService != nil {
		s.notifyStatus(ctx, updated)
	}
	return updated, nil
}

func (s *reservationService) notifyStatus(ctx context.Context, res *domain.Reservation) {
	data := &domain.ReservationStatusEmailData{
		Name:   res.Name,
		Email:  res.Email,
		Date:   res.Date,
		Time:   res.Time,
		Guests: res.Guests,
	}
	var err error
	switch res.Status {
	case domain.StatusApproved:
		err = s.emailService.SendReservationApproved(ctx, data)
	case domain.StatusRejected:
		err = s.emailService.SendReservationRejected(ctx, data)
	default:
		return
	}
	if err != nil {
		s.logger.Warn("status notification failed", "reservation_id", res.ID, "status", res.Status, "err", err)
	}
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
