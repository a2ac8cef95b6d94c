package scryfall

import (
	"errors"
	"fmt"
)

// QueryKind identifies how a card was looked up.
type QueryKind string

const (
	// QueryByName is a fuzzy named-card lookup.
	QueryByName QueryKind = "name"

	// QueryByID is a rulings lookup by Scryfall card ID.
	QueryByID QueryKind = "id"
)

// NotFoundError is returned when Scryfall answers a lookup with a non-success
// status: no card matches the queried name or ID. It is recoverable and never
// retried automatically.
type NotFoundError struct {
	Query      string
	Kind       QueryKind
	StatusCode int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Kind == QueryByID {
		return fmt.Sprintf("card ID %q not found in Scryfall database", e.Query)
	}
	return fmt.Sprintf("card %q not found in Scryfall database", e.Query)
}

// TransportError is returned when a request fails before a usable upstream
// answer arrives: network failure, timeout, or a malformed response body.
// Callers may choose to retry these, unlike NotFoundError.
type TransportError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("scryfall request to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is returned for malformed input, before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
