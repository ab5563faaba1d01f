package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReservationReceivedEmailData holds data for the "new reservation" email
// sent to the café's notification address.
type ReservationReceivedEmailData struct {
	Name    string
	Email   string
	Phone   string
	Type    string
	SubType string
	Date    string
	Time    string
	Guests  int
	Message string
}

// ReservationStatusEmailData holds data for the approved/rejected emails
// sent to the guest after a status transition.
type ReservationStatusEmailData struct {
	Name   string
	Email  string
	Date   string
	Time   string
	Guests int
}

// ContactMessageEmailData holds data for forwarding a contact-form message.
type ContactMessageEmailData struct {
	Name    string
	Email   string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendReservationReceived(ctx context.Context, data *ReservationReceivedEmailData) error
	SendReservationApproved(ctx context.Context, data *ReservationStatusEmailData) error
	SendReservationRejected(ctx context.Context, data *ReservationStatusEmailData) error
	SendContactMessage(ctx context.Context, data *ContactMessageEmailData) error
}
