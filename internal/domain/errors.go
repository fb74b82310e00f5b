package domain

import (
	"errors"
	"fmt"
)

// KeyPrefix is the default storage key prefix for fixerhub data.
const KeyPrefix = "fixerhub:"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrProfessionalNotFound signals a missing professional listing.
	ErrProfessionalNotFound = fmt.Errorf("professional %w", ErrNotFound)
	// ErrCategoryNotFound signals a missing category.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	// ErrConversationNotFound signals a missing or expired conversation.
	ErrConversationNotFound = fmt.Errorf("conversation %w", ErrNotFound)
	// ErrConversationClosed signals an attempt to extend a finished conversation.
	ErrConversationClosed = errors.New("conversation closed")
	// ErrValidation signals invalid input on a write path.
	ErrValidation = errors.New("validation failed")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a validation error for a field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
