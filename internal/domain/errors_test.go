package domain

import (
	"errors"
	"testing"
)

func TestNotFoundFamily(t *testing.T) {
	for _, err := range []error{ErrProfessionalNotFound, ErrCategoryNotFound, ErrConversationNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%v should match ErrNotFound", err)
		}
	}
	if errors.Is(ErrConversationClosed, ErrNotFound) {
		t.Error("ErrConversationClosed must not match ErrNotFound")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("rating", "must be between 0 and 5")
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError")
	}
	if ve.Field != "rating" {
		t.Errorf("field: got %q", ve.Field)
	}
	if err.Error() != "validation failed: rating must be between 0 and 5" {
		t.Errorf("message: got %q", err.Error())
	}
}
