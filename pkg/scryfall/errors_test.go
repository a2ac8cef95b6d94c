package scryfall

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNotFoundError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name:     "by name",
			err:      &NotFoundError{Query: "Lightning Bolt", Kind: QueryByName, StatusCode: 404},
			expected: `card "Lightning Bolt" not found in Scryfall database`,
		},
		{
			name:     "by id",
			err:      &NotFoundError{Query: "abc-123", Kind: QueryByID, StatusCode: 404},
			expected: `card ID "abc-123" not found in Scryfall database`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	te := &TransportError{Endpoint: "/cards/named", Err: io.EOF}

	if !errors.Is(te, io.EOF) {
		t.Error("errors.Is(te, io.EOF) = false, want true")
	}
}

func TestErrorClassification(t *testing.T) {
	notFound := &NotFoundError{Query: "x", Kind: QueryByName}
	transport := &TransportError{Endpoint: "/cards/named", Err: io.EOF}
	validation := &ValidationError{Field: "name", Reason: "must not be empty"}

	tests := []struct {
		name         string
		err          error
		isNotFound   bool
		isTransport  bool
		isValidation bool
	}{
		{name: "not found", err: notFound, isNotFound: true},
		{name: "transport", err: transport, isTransport: true},
		{name: "validation", err: validation, isValidation: true},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", notFound), isNotFound: true},
		{name: "wrapped transport", err: fmt.Errorf("lookup: %w", transport), isTransport: true},
		{name: "plain error", err: io.EOF},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.isNotFound)
			}
			if got := IsTransport(tt.err); got != tt.isTransport {
				t.Errorf("IsTransport() = %v, want %v", got, tt.isTransport)
			}
			if got := IsValidation(tt.err); got != tt.isValidation {
				t.Errorf("IsValidation() = %v, want %v", got, tt.isValidation)
			}
		})
	}
}
