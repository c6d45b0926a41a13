package generation

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed generation request.
type ErrorKind int

const (
	// ProviderFailure covers network, auth, malformed request and any other provider error.
	ProviderFailure ErrorKind = iota
	// QuotaExceeded means the provider account ran out of quota or billing credit.
	QuotaExceeded
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case QuotaExceeded:
		return "quota_exceeded"
	default:
		return "provider_failure"
	}
}

// User-facing messages for each ErrorKind.
const (
	QuotaExceededMessage   = "Gift suggestion quota exceeded. Please check your API key and billing details."
	ProviderFailureMessage = "Failed to generate gift suggestions. Please try again later."
)

// Sentinels matched by errors.Is against a *GenerationError of the same kind.
var (
	ErrQuotaExceeded   = errors.New("generation quota exceeded")
	ErrProviderFailure = errors.New("generation provider failure")

	// ErrInvalidConfig is returned when a generator cannot be constructed from its configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// GenerationError is the only error a Generator returns.
//
// Error() yields the user-facing message; the provider detail is kept in Err
// and is only meant for logs.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

// NewGenerationError wraps err with the given kind.
func NewGenerationError(kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return e.Message()
}

// Message returns the user-facing message for the error kind.
func (e *GenerationError) Message() string {
	if e.Kind == QuotaExceeded {
		return QuotaExceededMessage
	}
	return ProviderFailureMessage
}

// Detail returns the provider error text for logging.
func (e *GenerationError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the provider error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *GenerationError) Is(target error) bool {
	switch target {
	case ErrQuotaExceeded:
		return e.Kind == QuotaExceeded
	case ErrProviderFailure:
		return e.Kind == ProviderFailure
	}
	return false
}
