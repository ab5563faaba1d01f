package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrAdminCapReached    = errors.New("maximum number of admin accounts reached")
)

// FieldError describes a single failed validation rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries all field-level failures of one request so callers
// can present per-field feedback instead of a single opaque message.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := "validation failed:"
	for _, f := range e.Fields {
		msg += " " + f.Field + ": " + f.Message + ";"
	}
	return msg[:len(msg)-1]
}
