package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestMakeError_FlattensChains(t *testing.T) {
	inner := errors.New("inner")
	outer := fmt.Errorf("outer: %w", inner)

	e := MakeError(outer)
	if len(e) != 1 {
		// fmt's %w wrapping exposes Unwrap() error, not Unwrap() []error,
		// so the chain is kept as one entry.
		t.Logf("chain: %v", []error(e))
	}

	if !errors.Is(e, inner) {
		t.Error("expected errors.Is to find the inner error")
	}
}

func TestMakeError_Nil(t *testing.T) {
	if e := MakeError(); e != nil {
		t.Errorf("expected nil for no errors, got %v", e)
	}
	if e := MakeError(nil, nil); e != nil {
		t.Errorf("expected nil for nil errors, got %v", e)
	}
}

func TestError_Message(t *testing.T) {
	e := MakeErrorf("first").Wrapf("second").Wrapf("third %d", 3)

	want := "first: second: third 3"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_Is_SentinelAfterWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected bool
	}{
		{
			"wrapped section not found",
			ErrSectionNotFound.Wrapf("[%s]", "MISSING"),
			ErrSectionNotFound,
			true,
		},
		{
			"deeply wrapped",
			ErrCycleDetected.Wrapf("a").Wrapf("b").Wrapf("c"),
			ErrCycleDetected,
			true,
		},
		{
			"bare sentinel",
			ErrOptionNotFound,
			ErrOptionNotFound,
			true,
		},
		{
			"different sentinel",
			ErrSectionNotFound.Wrapf("[%s]", "MISSING"),
			ErrOptionNotFound,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.sentinel); got != tt.expected {
				t.Errorf("errors.Is = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Wrap_PreservesOrder(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	e := MakeError(first).Wrap(second)
	if len(e) != 2 || e[0] != first || e[1] != second {
		t.Errorf("unexpected chain: %v", []error(e))
	}
}

func TestUnwrapErrors(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")

	joined := errors.Join(a, b)
	chain := UnwrapErrors(joined)

	if len(chain) != 2 || chain[0] != a || chain[1] != b {
		t.Errorf("expected flattened [a b], got %v", []error(chain))
	}

	if got := UnwrapErrors(nil); got != nil {
		t.Errorf("expected nil for nil input, got %v", got)
	}
}

func TestVersion_Embedded(t *testing.T) {
	if Version == "" {
		t.Error("expected embedded version string")
	}
}
