// Package dispatcharr is a thin client for the Dispatcharr-compatible
// channel-manager API the tool reads channels from and writes renames to.
package dispatcharr

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrUnauthorized        = errors.New("host: authentication failed")
	ErrNotFound            = errors.New("host: resource not found")
	ErrUpstreamUnavailable = errors.New("host: unreachable or transport failure")
	ErrUpstreamError       = errors.New("host: internal error (5xx)")
	ErrBadResponse         = errors.New("host: invalid response format")
)

// APIError is a rich error type that wraps the sentinel errors with context.
type APIError struct {
	Sentinel  error
	Operation string
	Status    int
	Err       error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("dispatcharr: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause, so callers can
// errors.Is against ErrUpstreamUnavailable as well as e.g. context.Canceled.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Sentinel}
	}
	return []error{e.Sentinel, e.Err}
}

func apiErr(op string, sentinel error, status int, err error) *APIError {
	return &APIError{Sentinel: sentinel, Operation: op, Status: status, Err: err}
}
