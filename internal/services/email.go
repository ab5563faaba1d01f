package services

import (
	"context"
	"fmt"

	"cafesite/internal/domain"
)

type emailService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	adminEmail string
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. adminEmail is the café's notification address for the
// reservation-received and contact-message emails.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, adminEmail string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, adminEmail: adminEmail}
}

func (s *emailService) SendReservationReceived(ctx context.Context, data *domain.ReservationReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation_received", data)
	if err != nil {
		return fmt.Errorf("failed to render reservation_received template: %w", err)
	}
	if err := s.mailer.Send(s.adminEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reservation received email: %w", err)
	}
	return nil
}

func (s *emailService) SendReservationApproved(ctx context.Context, data *domain.ReservationStatusEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation approved data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation_approved", data)
	if err != nil {
		return fmt.Errorf("failed to render reservation_approved template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reservation approved email: %w", err)
	}
	return nil
}

func (s *emailService) SendReservationRejected(ctx context.Context, data *domain.ReservationStatusEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation rejected data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation_rejected", data)
	if err != nil {
		return fmt.Errorf("failed to render reservation_rejected template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reservation rejected email: %w", err)
	}
	return nil
}

func (s *emailService) SendContactMessage(ctx context.Context, data *domain.ContactMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("contact message data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_message", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_message template: %w", err)
	}
	if err := s.mailer.Send(s.adminEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact message email: %w", err)
	}
	return nil
}
