package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstream        = errors.New("upstream error")
	ErrNotConfigured   = errors.New("crm api key is not configured")
	ErrNoOwner         = errors.New("no owner assigned")
)

// UpstreamError is returned when the CRM answers with a non-2xx status.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("crm responded with status %d", e.Status)
	}

	return fmt.Sprintf("crm responded with status %d: %s", e.Status, e.Detail)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// InvalidArgument wraps ErrInvalidArgument with a human readable reason.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
