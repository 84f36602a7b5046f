package provider

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/inuse/pkg"
)

func TestParseYAML_SectionsAndEntries(t *testing.T) {
	input := `
SECTION-A:
  key-A1: value-A1
  use SECTION-B: ""
  count: 42
  flag: true
SECTION-B:
  key-B1: value-B1
EMPTY:
`

	doc, err := ParseYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	want := []string{"SECTION-A", "SECTION-B", "EMPTY"}
	got := doc.Sections()
	if len(got) != len(want) {
		t.Fatalf("expected sections %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	entries, err := doc.Entries("SECTION-A")
	if err != nil {
		t.Fatalf("Entries(SECTION-A) failed: %v", err)
	}
	if entries[0].Key != "key-A1" || entries[0].Value != "value-A1" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Key != "use SECTION-B" {
		t.Errorf("directive key not preserved: %+v", entries[1])
	}
	if entries[2].Value != "42" {
		t.Errorf("numeric scalar not stringified: %+v", entries[2])
	}
	if entries[3].Value != "true" {
		t.Errorf("boolean scalar not stringified: %+v", entries[3])
	}

	entries, err = doc.Entries("EMPTY")
	if err != nil {
		t.Fatalf("Entries(EMPTY) failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty section, got %v", entries)
	}
}

func TestParseYAML_NonMappingSection(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("SECTION:\n  - a\n  - b\n"))
	if !errors.Is(err, pkg.ErrReadInput) {
		t.Errorf("expected ErrReadInput for sequence section, got %v", err)
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML(strings.NewReader(":\n  - ]["))
	if !errors.Is(err, pkg.ErrReadInput) {
		t.Errorf("expected ErrReadInput for malformed input, got %v", err)
	}
}
