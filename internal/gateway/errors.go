package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorCategory is the normalized failure taxonomy for upstream attempts.
type ErrorCategory string

const (
	// ErrorTimeout means the shared deadline expired or the caller gave up.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorProviderOutage means the endpoint was unreachable or answered non-2xx.
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorBadData means the response body could not be read.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorInternal covers request construction failures.
	ErrorInternal ErrorCategory = "internal"
)

// AttemptError describes why a single route failed.
type AttemptError struct {
	Route      Route
	Category   ErrorCategory
	Status     int
	Underlying error
}

func (e *AttemptError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s fetch failed: HTTP %d", e.Route, e.Status)
	case e.Underlying != nil:
		return fmt.Sprintf("%s fetch failed: %v", e.Route, e.Underlying)
	default:
		return fmt.Sprintf("%s fetch failed", e.Route)
	}
}

func (e *AttemptError) Unwrap() error {
	return e.Underlying
}

// FetchError is returned when both the direct and the relay attempt failed.
// It unwraps to the direct failure, which is what users are shown.
type FetchError struct {
	Direct   error
	Relay    error
	Attempts []Attempt
}

func (e *FetchError) Error() string {
	return "failed to fetch data from both direct and relay: " + e.Direct.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Direct
}

// GetCategory extracts the category of the direct failure, or ErrorInternal.
func GetCategory(err error) ErrorCategory {
	var ae *AttemptError
	if errors.As(err, &ae) {
		return ae.Category
	}
	return ErrorInternal
}

func categorize(err error) ErrorCategory {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTimeout
	}
	return ErrorProviderOutage
}
