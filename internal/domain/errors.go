package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique identifier collision.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden indicates a valid identity lacking the required privilege.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries a user-visible message for malformed input.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError with the given message.
func Invalid(msg string) error { return ValidationError{Msg: msg} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
