package humanitix

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigMissing is returned before any network call when no upstream
	// API key is configured.
	ErrConfigMissing = errors.New("humanitix API key not configured")

	// ErrUpstreamUnavailable matches every *UpstreamError via errors.Is.
	ErrUpstreamUnavailable = errors.New("humanitix upstream unavailable")
)

// UpstreamError describes a failed call to the Humanitix API. StatusCode is
// zero when the request never produced a response.
type UpstreamError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Error fetching %s from Humanitix API: status %d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("Error fetching %s from Humanitix API: %v", e.Resource, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}
