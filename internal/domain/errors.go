package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound signals a menu item id that is not in the collection.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrSourceUnavailable signals that the upstream item source failed or
	// returned an unusable payload.
	ErrSourceUnavailable = errors.New("item source unavailable")
	// ErrInvalidRequest signals malformed request parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnknownSummary signals an unsupported summary kind.
	ErrUnknownSummary = errors.New("unknown summary kind")
	// ErrSummaryNotFound signals a summary kind with no stored data.
	ErrSummaryNotFound = errors.New("summary not found")
)

// SourceError wraps ErrSourceUnavailable with the upstream HTTP status, if any.
type SourceError struct {
	StatusCode int
	Reason     string
}

func (e *SourceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: upstream status %d: %s", ErrSourceUnavailable.Error(), e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrSourceUnavailable.Error(), e.Reason)
}

func (e *SourceError) Unwrap() error { return ErrSourceUnavailable }

// NewSourceError creates a source error. statusCode is 0 when no response was received.
func NewSourceError(statusCode int, reason string) error {
	return &SourceError{StatusCode: statusCode, Reason: reason}
}
