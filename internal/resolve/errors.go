package resolve

import (
	"errors"
	"fmt"
)

// Resolution failures. Each case renders a different message upstream, so
// they stay distinct instead of collapsing into one "not found".
var (
	// ErrMissingSlug means a required path segment was empty. Not
	// retryable without new input.
	ErrMissingSlug = errors.New("missing slug")

	ErrBrandNotFound   = errors.New("brand not found")
	ErrModelNotFound   = errors.New("model not found")
	ErrVariantNotFound = errors.New("variant not found")
)

// UpstreamError marks a catalog fetch that failed at the transport or HTTP
// level. These are the only failures worth a user-initiated retry.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
