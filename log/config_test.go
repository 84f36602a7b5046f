package log

import (
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"trace", "trace", LevelTrace},
		{"trace uppercase", "TRACE", LevelTrace},
		{"debug", "debug", LevelDebug},
		{"info", "info", LevelInfo},
		{"warn", "warn", LevelWarn},
		{"error", "ERROR", LevelError},
		{"offset form", "INFO+2", Level(2)},
		{"invalid falls back", "loud", DefaultLevel},
		{"empty falls back", "", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q",
				tt.level, got, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" text ", FormatText},
		{"yaml", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.expected {
			t.Errorf("ParseFormat(%q) = %v, want %v",
				tt.input, got, tt.expected)
		}
	}
}

func TestConfig_Options_SetFields(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelTrace),
		WithFormat(FormatText),
		WithCaller(true),
		WithPretty(false),
	)

	if c.level != LevelTrace {
		t.Errorf("expected level trace, got %v", c.level)
	}
	if c.format != FormatText {
		t.Errorf("expected format text, got %v", c.format)
	}
	if !c.caller {
		t.Error("expected caller enabled")
	}
	if c.pretty {
		t.Error("expected pretty disabled")
	}
}

func TestConfig_formatTime_Layouts(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"rfc3339 named", "rfc3339", "2023-10-15T14:30:45Z"},
		{"rfc3339 mixed case", "RFC3339", "2023-10-15T14:30:45Z"},
		{
			"rfc3339nano named",
			"rfc3339nano",
			"2023-10-15T14:30:45.123456789Z",
		},
		{"timeonly named", "timeonly", "14:30:45"},
		{"none omits timestamp", "none", ""},
		{"empty omits timestamp", "", ""},
		{
			"literal layout",
			"2006-01-02 15:04:05",
			"2023-10-15 14:30:45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithTimeLayout(tt.layout)(config{})
			if got := c.formatTime(now); got != tt.expected {
				t.Errorf("formatTime = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLevels_IncludesTrace(t *testing.T) {
	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	if len(names) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(names))
	}
	if names[0] != "trace" {
		t.Errorf("expected first level trace, got %q", names[0])
	}
}

func TestFormats_ListsAll(t *testing.T) {
	found := map[string]bool{}
	for name := range Formats() {
		found[name] = true
	}

	for _, want := range []string{"json", "text"} {
		if !found[want] {
			t.Errorf("expected format %q in Formats()", want)
		}
	}
}

func TestMakeConfig_DefaultsWithOverrides(t *testing.T) {
	c := makeConfig(nil, WithLevel(LevelDebug))

	if c.output == nil {
		t.Error("expected nil writer replaced with discard")
	}
	if c.level != LevelDebug {
		t.Errorf("expected override level debug, got %v", c.level)
	}
	if c.format != DefaultFormat {
		t.Errorf("expected default format, got %v", c.format)
	}

	got := c.formatTime(time.Date(2023, 10, 15, 14, 30, 45, 0, time.UTC))
	if !strings.Contains(got, "2023-10-15") {
		t.Errorf("expected default rfc3339 timestamp, got %q", got)
	}
}
