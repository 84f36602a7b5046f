package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(
	t *testing.T,
	resolver kong.Resolver,
	name string,
) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	val, err := resolver.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolveConfig_SectionValues(t *testing.T) {
	config := `
[config]
log-level: debug
log-format = text

[other]
foo: bar
`

	loader := resolveConfig("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "log-level"); val != "debug" {
		t.Errorf("expected log-level=debug, got %v", val)
	}

	if val := resolveFlag(t, resolver, "log-format"); val != "text" {
		t.Errorf("expected log-format=text, got %v", val)
	}

	// Keys from other sections must not leak into the config section.
	if val := resolveFlag(t, resolver, "foo"); val != nil {
		t.Errorf("expected foo unset, got %v", val)
	}
}

func TestResolveConfig_UnderscoreHyphenMapping(t *testing.T) {
	config := `
[config]
log_level: debug
`

	loader := resolveConfig("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	// The hyphenated flag name matches the underscored config key.
	if val := resolveFlag(t, resolver, "log-level"); val != "debug" {
		t.Errorf("expected log-level=debug, got %v", val)
	}

	if val := resolveFlag(t, resolver, "log_level"); val != "debug" {
		t.Errorf("expected log_level=debug, got %v", val)
	}
}

func TestResolveConfig_MissingSection(t *testing.T) {
	config := `
[existing]
foo: bar
`

	loader := resolveConfig("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "foo"); val != nil {
		t.Errorf("expected nil value for missing section, got %v", val)
	}
}

func TestResolveConfig_UnparseableInput(t *testing.T) {
	// A key before any section header is a parse error; the loader must
	// degrade to an empty configuration instead of failing startup.
	config := `orphan-key: value`

	loader := resolveConfig("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "orphan-key"); val != nil {
		t.Errorf("expected nil value from unparseable input, got %v", val)
	}
}

func TestResolveConfig_Validate(t *testing.T) {
	loader := resolveConfig("config")

	resolver, err := loader(strings.NewReader("[config]\nfoo: bar\n"))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	if err := resolver.Validate(nil); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
