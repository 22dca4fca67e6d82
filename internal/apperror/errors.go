package apperror

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a question arrives before any successful
// upload for that user. Controllers map it to a friendly 400, never a 500.
var ErrNoSession = errors.New("no document session for user")

// ValidationError covers missing or malformed request inputs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ExtractionError means the uploaded document could not be read or parsed.
// The file came from the caller, so this surfaces as a client error.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// EmbeddingError wraps a failure from the embedding provider.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// GenerationError wraps a failure from the generation model. Not retried,
// the underlying message is kept for the 500 detail.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("error generating answer: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
