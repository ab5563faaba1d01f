package domain

import "context"

// ContactMessage is a public contact-form submission. Messages are forwarded
// to the café's notification address and not persisted.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService forwards contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg *ContactMessage) error
}
