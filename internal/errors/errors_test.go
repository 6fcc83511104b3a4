package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		message   string
		cause     error
		wantParts []string
	}{
		{
			name:      "with cause",
			code:      MalformedStructure,
			message:   "bad NBT header",
			cause:     errors.New("unexpected EOF"),
			wantParts: []string{"MALFORMED_STRUCTURE", "bad NBT header", "unexpected EOF"},
		},
		{
			name:      "without cause",
			code:      OriginNotFound,
			message:   "block minecraft:blue_wool not found",
			cause:     nil,
			wantParts: []string{"ORIGIN_NOT_FOUND", "minecraft:blue_wool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.cause)
			got := err.Error()

			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, missing %q", got, part)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(IOError, "write failed", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestCodeOf(t *testing.T) {
	err := New(InputNotFound, "no such file", nil)
	wrapped := fmt.Errorf("reading structure: %w", err)

	if got := CodeOf(wrapped); got != InputNotFound {
		t.Errorf("CodeOf(wrapped) = %q, want %q", got, InputNotFound)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestWithHint(t *testing.T) {
	err := New(OriginNotFound, "origin missing", nil).WithHint("place a marker block")
	if err.Hint != "place a marker block" {
		t.Errorf("Hint = %q", err.Hint)
	}
}
