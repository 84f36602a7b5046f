package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/inuse/provider"
)

// resolveConfig returns a [kong.ConfigurationLoader] that reads default
// flag values from one section of an INI-formatted configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveConfig("config"), "/path/to/config.ini")
//
// Each key in the named section provides a default for the flag of the
// same name. Flag names with hyphens (e.g. "log-level") may be written
// with either hyphens or underscores in the file:
//
//	[config]
//	log-level: debug
//	log_format = text
//	threshold: 5
//
// Command-line flags override config file values. A missing or
// unparseable file, or a missing section, yields an empty configuration
// so that every flag falls back to its built-in default.
func resolveConfig(section string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		doc, err := provider.ParseINI(r)
		if err != nil {
			return flagDefaults{}, nil
		}

		entries, err := doc.Entries(section)
		if err != nil {
			return flagDefaults{}, nil
		}

		defaults := make(flagDefaults, len(entries))
		for _, e := range entries {
			defaults[e.Key] = e.Value
		}

		return defaults, nil
	}
}

// flagDefaults implements [kong.Resolver] for INI-backed configs.
type flagDefaults map[string]string

// Validate implements [kong.Resolver].
func (d flagDefaults) Validate(*kong.Application) error {
	// The section was already parsed successfully.
	return nil
}

// Resolve implements [kong.Resolver].
func (d flagDefaults) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := d[flag.Name]; ok {
		return value, nil
	}

	// Accept the underscore spelling of hyphenated flag names.
	underscore := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := d[underscore]; ok {
		return value, nil
	}

	// Not found: let Kong use its defaults.
	return nil, nil
}
