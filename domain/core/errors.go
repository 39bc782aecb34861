package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound     = errors.New("resource not found")
	ErrLeadNotFound = fmt.Errorf("%w: lead", ErrNotFound)
	ErrRunNotFound  = fmt.Errorf("%w: analysis run", ErrNotFound)

	// Layout errors
	ErrLayoutNotFound      = errors.New("no layout configured for analysis type")
	ErrUnknownAnalysisType = errors.New("unknown analysis type")

	// Composition errors
	ErrFragmentNotRegistered = errors.New("fragment not registered")
	ErrQueueDrained          = errors.New("extension queue already drained")
)

// NewNotFoundError builds a not-found error carrying the resource and id.
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// NewLayoutError builds a layout-lookup error for an analysis type.
func NewLayoutError(analysisType string) error {
	return fmt.Errorf("%w: %q", ErrLayoutNotFound, analysisType)
}

// IsNotFoundError reports whether err is any not-found variant.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsLayoutError reports whether err is a layout configuration failure.
func IsLayoutError(err error) bool {
	return errors.Is(err, ErrLayoutNotFound) ||
		errors.Is(err, ErrUnknownAnalysisType)
}
