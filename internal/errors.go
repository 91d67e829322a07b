package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks requests rejected before any chunking: blank
	// text, missing target, or a target outside the configured allow-list.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProviderUnavailable marks a provider that could not be built or
	// reached before the first chunk was attempted.
	ErrProviderUnavailable = errors.New("translation provider unavailable")
)

// ChunkError records the failure of a single chunk. It is recovered by
// substituting the original chunk and never fails the request.
type ChunkError struct {
	Index int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d: %v", e.Index, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
