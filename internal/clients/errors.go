// Package clients holds HTTP clients for the external data sources and
// the error kinds they surface.
package clients

import (
	"errors"
	"fmt"
)

// FetchError captures a non-success HTTP response from an upstream
// source. Requests are not retried; the error carries the status for
// the caller to translate.
type FetchError struct {
	Source     string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetch failed: %s", e.Source, e.Status)
}

// AsFetchError attempts to unwrap an error into a FetchError
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
