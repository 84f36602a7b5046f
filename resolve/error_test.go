package resolve

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("root cause")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"message only", NewError("walk failed"), "walk failed"},
		{
			"message and cause",
			NewError("walk failed").Wrap(cause),
			"walk failed: root cause",
		},
		{"cause only", WrapError(cause), "root cause"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewError("walk failed").Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
}

func TestWrapError_PassesThroughExisting(t *testing.T) {
	orig := NewError("already structured")
	if got := WrapError(orig); got != orig {
		t.Error("expected existing *Error returned unchanged")
	}
}

func TestError_With_Immutable(t *testing.T) {
	base := NewError("condition").With(slog.String("a", "1"))
	derived := base.With(slog.String("b", "2"))

	if len(base.attrs) != 1 {
		t.Errorf("With mutated receiver: %d attrs", len(base.attrs))
	}
	if len(derived.attrs) != 2 {
		t.Errorf("expected 2 attrs on derived, got %d", len(derived.attrs))
	}
}

func TestError_LogValue(t *testing.T) {
	err := NewError("cycle").
		Wrap(errors.New("cause")).
		With(slog.String("sec-src", "A"))

	group := err.LogValue().Group()

	found := map[string]string{}
	for _, attr := range group {
		found[attr.Key] = attr.Value.String()
	}

	if found["error"] != "cycle" {
		t.Errorf("expected error attr, got %v", found)
	}
	if found["cause"] != "cause" {
		t.Errorf("expected cause attr, got %v", found)
	}
	if found["sec-src"] != "A" {
		t.Errorf("expected custom attr, got %v", found)
	}
}
