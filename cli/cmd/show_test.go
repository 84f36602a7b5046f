package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ardnew/inuse/envvar"
	"github.com/ardnew/inuse/provider"
	"github.com/ardnew/inuse/resolve"
)

func showFixture(t *testing.T) *resolve.Engine {
	t.Helper()

	doc := provider.NewDocument()

	err := doc.MergeINI(strings.NewReader(`
[BASE]
compiler: gcc

[DEV]
use BASE:
stage: dev
`), "fixture")
	if err != nil {
		t.Fatalf("MergeINI failed: %v", err)
	}

	return resolve.New(doc, resolve.WithHandlers(envvar.Handlers()))
}

func TestShowWriteText(t *testing.T) {
	engine := showFixture(t)
	show := &Show{Format: "text"}

	var buf bytes.Buffer

	err := show.writeText(&buf, engine.View(), []string{"DEV"})
	if err != nil {
		t.Fatalf("writeText failed: %v", err)
	}

	want := "[DEV]\ncompiler: gcc\nstage: dev\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestShowWriteText_MultipleSections(t *testing.T) {
	engine := showFixture(t)
	show := &Show{Format: "text"}

	var buf bytes.Buffer

	err := show.writeText(&buf, engine.View(), []string{"BASE", "DEV"})
	if err != nil {
		t.Fatalf("writeText failed: %v", err)
	}

	// Blocks are separated by a blank line.
	want := "[BASE]\ncompiler: gcc\n\n[DEV]\ncompiler: gcc\nstage: dev\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestShowWriteText_UnknownSection(t *testing.T) {
	engine := showFixture(t)
	show := &Show{Format: "text"}

	var buf bytes.Buffer

	err := show.writeText(&buf, engine.View(), []string{"MISSING"})
	if err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestShowWriteJSON(t *testing.T) {
	engine := showFixture(t)
	show := &Show{Format: "json", Indent: 0}

	var buf bytes.Buffer

	err := show.writeJSON(&buf, engine.View(), []string{"DEV"})
	if err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	got := buf.String()

	for _, want := range []string{`"DEV"`, `"compiler":"gcc"`, `"stage":"dev"`} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestShowWriteYAML(t *testing.T) {
	engine := showFixture(t)
	show := &Show{Format: "yaml", Indent: 2}

	var buf bytes.Buffer

	err := show.writeYAML(t.Context(), &buf, engine.View(), []string{"DEV"})
	if err != nil {
		t.Fatalf("writeYAML failed: %v", err)
	}

	want := "DEV:\n  compiler: gcc\n  stage: dev\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", buf.String(), want)
	}
}
