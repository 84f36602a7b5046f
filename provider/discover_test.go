package provider

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/inuse/pkg"
)

func TestDiscover_FindsInAncestor(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(root, "config.ini")
	if err := os.WriteFile(target, []byte("[S]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover("config.ini", nested)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if found != target {
		t.Errorf("expected %q, got %q", target, found)
	}
}

func TestDiscover_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	for _, dir := range []string{root, nested} {
		path := filepath.Join(dir, "config.ini")
		if err := os.WriteFile(path, []byte("[S]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	found, err := Discover("config.ini", nested)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if found != filepath.Join(nested, "config.ini") {
		t.Errorf("expected nearest match, got %q", found)
	}
}

func TestDiscover_ExistingPathShortCircuits(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "explicit.yaml")
	if err := os.WriteFile(target, []byte("S:\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(target, filepath.Join(dir, "unrelated"))
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if found != target {
		t.Errorf("expected %q, got %q", target, found)
	}
}

func TestDiscover_NotFound(t *testing.T) {
	_, err := Discover("no-such-file.ini", t.TempDir())
	if !errors.Is(err, pkg.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}
