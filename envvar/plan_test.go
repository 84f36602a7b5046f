package envvar

import (
	"os"
	"strings"
	"testing"
)

func pathList(items ...string) string {
	return strings.Join(items, string(os.PathListSeparator))
}

func TestPlanFrom_CreatesOnce(t *testing.T) {
	shared := map[string]any{}

	first := PlanFrom(shared)
	if first == nil {
		t.Fatal("expected plan created in accumulator")
	}

	second := PlanFrom(shared)
	if first != second {
		t.Error("expected same plan on second lookup")
	}
}

func TestPlan_Apply_Set(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionSet, "FOO", "bar"})
	plan.add(Command{ActionSet, "FOO", "baz"})

	env := plan.Apply(nil)
	if env["FOO"] != "baz" {
		t.Errorf("expected last set to win, got %q", env["FOO"])
	}
}

func TestPlan_Apply_PrependAppend(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionPrepend, "PATH", "/new/bin"})
	plan.add(Command{ActionAppend, "PATH", "/opt/bin"})

	env := plan.Apply(map[string]string{"PATH": "/usr/bin"})

	want := pathList("/new/bin", "/usr/bin", "/opt/bin")
	if env["PATH"] != want {
		t.Errorf("expected %q, got %q", want, env["PATH"])
	}
}

func TestPlan_Apply_AppendKeepsOrder(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionAppend, "PATH", "/opt/bin"})

	// The existing elements must keep their relative order; only the
	// appended value moves to the end.
	env := plan.Apply(map[string]string{
		"PATH": pathList("/a", "/b", "/c"),
	})

	want := pathList("/a", "/b", "/c", "/opt/bin")
	if env["PATH"] != want {
		t.Errorf("expected %q, got %q", want, env["PATH"])
	}
}

func TestPlan_Apply_PrependKeepsOrder(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionPrepend, "PATH", "/new/bin"})

	env := plan.Apply(map[string]string{
		"PATH": pathList("/a", "/b", "/c"),
	})

	want := pathList("/new/bin", "/a", "/b", "/c")
	if env["PATH"] != want {
		t.Errorf("expected %q, got %q", want, env["PATH"])
	}
}

func TestPlan_Apply_PrependEmpty(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionPrepend, "PATH", "/only/bin"})

	env := plan.Apply(nil)
	if env["PATH"] != "/only/bin" {
		t.Errorf("expected bare value for empty variable, got %q", env["PATH"])
	}
}

func TestPlan_Apply_Remove(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionRemove, "PATH", "/stale/bin"})

	env := plan.Apply(map[string]string{
		"PATH": pathList("/usr/bin", "/stale/bin", "/opt/bin"),
	})

	want := pathList("/usr/bin", "/opt/bin")
	if env["PATH"] != want {
		t.Errorf("expected %q, got %q", want, env["PATH"])
	}
}

func TestPlan_Apply_Unset(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionUnset, "SECRET", ""})

	env := plan.Apply(map[string]string{"SECRET": "hunter2"})
	if _, ok := env["SECRET"]; ok {
		t.Error("expected variable removed")
	}
}

func TestPlan_Apply_ExpandsReferences(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionSet, "ROOT", "/opt/tool"})
	plan.add(Command{ActionSet, "BIN", "${ROOT}/bin"})

	env := plan.Apply(nil)
	if env["BIN"] != "/opt/tool/bin" {
		t.Errorf("expected reference expansion, got %q", env["BIN"])
	}
}

func TestPlan_Apply_SnapshotUntouched(t *testing.T) {
	base := map[string]string{"FOO": "original"}

	plan := &Plan{}
	plan.add(Command{ActionSet, "FOO", "changed"})
	plan.Apply(base)

	if base["FOO"] != "original" {
		t.Error("Apply mutated the snapshot")
	}
}

func TestPlan_Export(t *testing.T) {
	plan := &Plan{}
	plan.add(Command{ActionSet, "FOO", "has 'quote'"})
	plan.add(Command{ActionUnset, "GONE", ""})

	var sb strings.Builder
	if err := plan.Export(&sb, map[string]string{"GONE": "x"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	got := sb.String()
	if !strings.Contains(got, `export FOO='has '\''quote'\'''`) {
		t.Errorf("expected quoted export, got %q", got)
	}
	if !strings.Contains(got, "unset GONE") {
		t.Errorf("expected unset statement, got %q", got)
	}
}

func TestEnviron(t *testing.T) {
	env := Environ([]string{"A=1", "B=x=y", "MALFORMED"})

	if env["A"] != "1" {
		t.Errorf("expected A=1, got %q", env["A"])
	}
	if env["B"] != "x=y" {
		t.Errorf("expected value split at first '=', got %q", env["B"])
	}
	if _, ok := env["MALFORMED"]; ok {
		t.Error("expected malformed entry skipped")
	}
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionSet, "set"},
		{ActionPrepend, "prepend"},
		{ActionAppend, "append"},
		{ActionRemove, "remove"},
		{ActionUnset, "unset"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q",
				tt.action, got, tt.expected)
		}
	}
}
