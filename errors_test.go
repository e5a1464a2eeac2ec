package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := NewError(CodeUnknownNode, "unknown start location")
		if err.Error() != "[UNKNOWN_NODE] unknown start location" {
			t.Errorf("expected [UNKNOWN_NODE] unknown start location, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("original error")
		err := WrapError(original, CodeInternal, "internal failure")
		expected := "[INTERNAL_ERROR] internal failure: original error"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
		if !errors.Is(err, original) {
			t.Error("expected wrapped error to unwrap to original")
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := NewError(CodeInvalidData, "bad row")
		if !IsCode(err, CodeInvalidData) {
			t.Error("expected IsCode to return true for CodeInvalidData")
		}
		if IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to return false for CodeNotFound")
		}
		if IsCode(errors.New("plain"), CodeInvalidData) {
			t.Error("expected IsCode to return false for a plain error")
		}
	})

	t.Run("IsCodeWithWrapped", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewError(CodeNotFound, "missing"))
		if !IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to see through fmt wrapping")
		}
	})

	t.Run("WithContext", func(t *testing.T) {
		err := NewError(CodeInvalidData, "bad row").WithContext(CtxLine, 3)
		expected := "[INVALID_DATA] bad row map[line:3]"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
	})

	t.Run("AddContext", func(t *testing.T) {
		var err error = NewError(CodeInvalidData, "bad row")
		err = AddContext(err, CtxPath, "coordinates.txt")
		if !IsCode(err, CodeInvalidData) {
			t.Error("expected AddContext to keep the code")
		}

		plain := AddContext(errors.New("boom"), CtxPath, "x")
		if !IsCode(plain, CodeInternal) {
			t.Error("expected plain errors to become internal errors")
		}
	})
}
