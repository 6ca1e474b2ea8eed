// Package errors defines the failure taxonomy shared by the source adapters.
//
// Transport and parse failures never cross an adapter boundary: adapters
// produce them internally and the boundary converts them to query outcomes.
package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a provider answered but has no record.
	ErrNotFound = stdErrors.New("not found")

	// ErrIdentifierMismatch is returned when a provider's record carries an
	// ISBN different from the one queried.
	ErrIdentifierMismatch = stdErrors.New("identifier mismatch")
)

// TransportError covers timeouts, connection errors and non-2xx answers.
type TransportError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v", e.Source, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
	default:
		return fmt.Sprintf("%s: transport: %v", e.Source, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a connection-level failure.
func NewTransportError(source string, err error) *TransportError {
	return &TransportError{Source: source, Err: err}
}

// NewStatusError reports a non-2xx HTTP answer.
func NewStatusError(source string, status int) *TransportError {
	return &TransportError{Source: source, StatusCode: status}
}

// IsTransportError reports whether err is a TransportError or a rate limit.
func IsTransportError(err error) bool {
	var te *TransportError
	return stdErrors.As(err, &te) || IsRateLimitError(err)
}

// ParseError reports a response body of an unexpected shape.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decoding failure.
func NewParseError(source string, err error) *ParseError {
	return &ParseError{Source: source, Err: err}
}

// IsParseError reports whether err is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return stdErrors.As(err, &pe)
}

// Mismatch wraps ErrIdentifierMismatch with the queried and returned identifiers.
func Mismatch(source, queried, returned string) error {
	return fmt.Errorf("%s: queried %s, got %s: %w", source, queried, returned, ErrIdentifierMismatch)
}

// IsIdentifierMismatch reports whether err wraps ErrIdentifierMismatch.
func IsIdentifierMismatch(err error) bool {
	return stdErrors.Is(err, ErrIdentifierMismatch)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return stdErrors.Is(err, ErrNotFound)
}
