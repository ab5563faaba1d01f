package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cafesite/internal/domain"
)

type contactService struct {
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewContactService creates the contact-form service. Submissions are only
// forwarded by email, never stored.
func NewContactService(emailService domain.EmailService, timeout time.Duration) domain.ContactService {
	return &contactService{emailService: emailService, contextTimeout: timeout}
}

func (s *contactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var fieldErrs []domain.FieldError
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(strings.ToLower(msg.Email))
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if !adminEmailRegexp.MatchString(msg.Email) {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "email", Message: "email is invalid"})
	}
	if msg.Message == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "message", Message: "message is required"})
	} else if len(msg.Message) > domain.MaxMessageLen {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "message", Message: fmt.Sprintf("message must be at most %d characters", domain.MaxMessageLen)})
	}
	if len(fieldErrs) > 0 {
		return &domain.ValidationError{Fields: fieldErrs}
	}

	data := &domain.ContactMessageEmailData{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	}
	if err := s.emailService.SendContactMessage(ctx, data); err != nil {
		return fmt.Errorf("forward contact message: %w", err)
	}
	return nil
}
