// Package weberror defines typed web application errors.
package weberror

import (
	"errors"
	"net/http"

	"github.com/louisbranch/contactbook/internal/storage"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// FromStore translates a storage failure into a typed web error.
//
// Constraint violations are the caller's fault; everything else is treated as
// a persistence failure and surfaces as a server error.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrConstraintViolation) {
		return Error{Kind: KindInvalidInput, Message: "contact fields must be present and within length limits"}
	}
	return Error{Kind: KindUnknown, Message: "contact could not be saved"}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
