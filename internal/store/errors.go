package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced document, tab or row id does
// not exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// ConfigError means a required credential or config value is missing or
// malformed. It fails the specific call, not the whole process.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s is required", e.Field)
}

// AuthError means the external service rejected our credentials.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Reason, e.Err)
	}
	return "auth: " + e.Reason
}

func (e *AuthError) Unwrap() error { return e.Err }

// ValidationError means caller-supplied fields failed basic shape checks.
// It is raised before any external call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TransientError wraps a network, timeout or rate-limit failure talking to
// an external service. Callers retry these with backoff.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient: " + e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// MappingError means a stored cell could not be coerced to the expected
// type. Listing paths skip and log the offending row instead of failing.
type MappingError struct {
	Header string
	Value  string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping: column %q: cannot parse %q", e.Header, e.Value)
}

func IsMapping(err error) bool {
	var me *MappingError
	return errors.As(err, &me)
}
