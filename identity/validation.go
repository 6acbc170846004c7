package identity

import (
	"errors"
	"strings"
)

var (
	EmailRequiredErr    = errors.New("email is required")
	InvalidEmailErr     = errors.New("invalid email format")
	PasswordRequiredErr = errors.New("password is required")
	PasswordMismatchErr = errors.New("passwords do not match")
)

// Validate checks the registration fields before any network call is made.
// A password/confirmation mismatch is a local validation failure and must
// never reach the backend.
func (r Registration) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return PasswordRequiredErr
	}
	if r.Password != r.ConfirmPassword {
		return PasswordMismatchErr
	}
	return nil
}

// Validate checks the login fields before any network call is made.
func (c Credentials) Validate() error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	if c.Password == "" {
		return PasswordRequiredErr
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return EmailRequiredErr
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return InvalidEmailErr
	}
	return nil
}
