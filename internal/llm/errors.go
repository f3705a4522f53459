package llm

import (
	"errors"
	"fmt"
	"strings"
)

// The transport boundary returns exactly one of three error variants, so
// every call site handles a finite case set instead of probing a vendor
// exception hierarchy.

// ConnectivityError reports that the service could not be reached at all.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("API connection error: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API status error: %d - %s", e.Code, e.Detail)
}

// Hint returns user guidance for the status code, or "" when there is none.
func (e *StatusError) Hint() string {
	switch e.Code {
	case 401:
		return "check if your API key is correct and active"
	case 429:
		return "you might be exceeding rate limits"
	case 400:
		detail := strings.ToLower(e.Detail)
		if strings.Contains(detail, "context_length_exceeded") ||
			strings.Contains(detail, "token limit") ||
			strings.Contains(detail, "prompt is too long") {
			return "input code plus the framework likely exceed the model's context window"
		}
		return "bad request - check input formatting or parameters"
	default:
		return ""
	}
}

// UnexpectedError wraps any other vendor-specific failure.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error during API call: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// IsCallError reports whether err belongs to the transport error set.
func IsCallError(err error) bool {
	var connErr *ConnectivityError
	var statusErr *StatusError
	var unexpectedErr *UnexpectedError
	return errors.As(err, &connErr) || errors.As(err, &statusErr) || errors.As(err, &unexpectedErr)
}
