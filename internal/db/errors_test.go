package db

import (
	"context"
	"errors"
	"testing"
)

func TestError_Unwrap(t *testing.T) {
	err := &Error{Op: OpHSet, Err: context.DeadlineExceeded}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected wrapped error to match")
	}
	if err.Error() != "HSET: context deadline exceeded" {
		t.Errorf("message: got %q", err.Error())
	}
}
