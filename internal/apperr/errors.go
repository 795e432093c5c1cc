// Package apperr holds the error kinds shared across features.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrValidation is matched by every ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets callers test against ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Required builds the ValidationError for an empty required field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// Invalid builds a ValidationError for a field holding an unsupported value.
func Invalid(field, value string, allowed []string) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unsupported %s %q (allowed: %s)", field, value, strings.Join(allowed, ", ")),
	}
}

// ConfigurationError is raised while loading static configuration. It is fatal at startup.
type ConfigurationError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// GatewayError wraps a failed call into the model gateway.
type GatewayError struct {
	Op    string
	Model string
	Err   error
}

func (e *GatewayError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway %s with model %s failed: %v", e.Op, e.Model, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// HTTPStatus maps err to a response status: 400 for validation failures, 500 otherwise.
func HTTPStatus(err error) int {
	if IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
