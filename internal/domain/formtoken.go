package domain

import "context"

// FormTokenService issues single-use tokens for the public forms. A token is
// fetched before submitting and consumed with the submission; consuming an
// unknown or already-used token fails.
type FormTokenService interface {
	Issue(ctx context.Context) (string, error)
	// Consume invalidates token and reports whether it was live.
	Consume(ctx context.Context, token string) (bool, error)
}
