package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound is returned when the shader resource cannot be
	// opened or read.
	ErrResourceNotFound = errors.New("shader resource not found")
	// ErrMalformedSource is returned when a source line precedes every
	// section marker, or a line is not valid UTF-8.
	ErrMalformedSource = errors.New("malformed shader source")
)

// SourceError locates a malformed line. It matches ErrMalformedSource.
type SourceError struct {
	Line   int
	Text   string
	Reason string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%v: line %d %q: %s", ErrMalformedSource, e.Line, e.Text, e.Reason)
}

func (e *SourceError) Unwrap() error {
	return ErrMalformedSource
}

// ResourceError wraps the failure to open or read a named resource.
// It matches ErrResourceNotFound and the underlying cause.
type ResourceError struct {
	Name string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: %v", ErrResourceNotFound, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrResourceNotFound, e.Name, e.Err)
}

func (e *ResourceError) Unwrap() []error {
	return []error{ErrResourceNotFound, e.Err}
}
