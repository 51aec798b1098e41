package suggest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fetch failures so callers can pick the right
// one-line message without inspecting wrapped transport errors.
type ErrorKind int

const (
	// ErrTimeout means the request exceeded the configured deadline.
	ErrTimeout ErrorKind = iota
	// ErrTransport covers DNS failures, refused connections and
	// non-2xx responses.
	ErrTransport
	// ErrFormat means the body was not the expected two-element
	// JSON array.
	ErrFormat
)

// Error is a tagged fetch failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrTimeout:
		return fmt.Sprintf("request timed out: %v", e.Err)
	case ErrFormat:
		return fmt.Sprintf("unexpected response format: %v", e.Err)
	default:
		return fmt.Sprintf("fetching suggestions: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a fetch error, or ErrTransport for any
// other error value.
func KindOf(err error) ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ErrTransport
}
