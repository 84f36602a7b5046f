package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/inuse/resolve"
)

// Show resolves one or more sections and prints their merged key/value
// content. With no section arguments, every section that produces merged
// output is shown.
type Show struct {
	Sections []string `arg:"" help:"Section name(s) to resolve" name:"sections" optional:""`

	Format string `default:"text" enum:"text,json,yaml" help:"Output format" short:"o"`
	Indent int    `default:"2"                          help:"Indent width for structured output" short:"i"`
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	view := engine.View()

	// Named sections resolve lazily inside the writers, so a bad name (or
	// an escalated resolution failure) surfaces from [resolve.View.Items].
	names := s.Sections
	if len(names) == 0 {
		if err := view.Materialize(); err != nil {
			return err
		}

		names = view.Sections()
	}

	w := stdout(ctx)

	switch s.Format {
	case "json":
		return s.writeJSON(w, view, names)
	case "yaml":
		return s.writeYAML(ctx, w, view, names)
	default:
		return s.writeText(w, view, names)
	}
}

// writeText prints each section as an INI-style block.
func (s *Show) writeText(
	w io.Writer,
	view *resolve.View,
	names []string,
) error {
	for i, name := range names {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
			return err
		}

		items, err := view.Items(name)
		if err != nil {
			return err
		}

		for key, value := range items {
			if _, err := fmt.Fprintf(w, "%s: %s\n", key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeJSON prints the sections as one JSON object keyed by section name.
func (s *Show) writeJSON(
	w io.Writer,
	view *resolve.View,
	names []string,
) error {
	out := make(map[string]map[string]string, len(names))

	for _, name := range names {
		items, err := view.Items(name)
		if err != nil {
			return err
		}

		options := make(map[string]string)
		for key, value := range items {
			options[key] = value
		}

		out[name] = options
	}

	var (
		data []byte
		err  error
	)

	if s.Indent > 0 {
		data, err = json.MarshalIndent(out, "", strings.Repeat(" ", s.Indent))
	} else {
		data, err = json.Marshal(out)
	}

	if err != nil {
		return ErrJSONMarshal.Wrap(err).
			With(slog.String("format", s.Format))
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// writeYAML prints the sections as one YAML mapping keyed by section name,
// preserving key order within each section.
func (s *Show) writeYAML(
	ctx context.Context,
	w io.Writer,
	view *resolve.View,
	names []string,
) error {
	out := make(yaml.MapSlice, 0, len(names))

	for _, name := range names {
		items, err := view.Items(name)
		if err != nil {
			return err
		}

		options := make(yaml.MapSlice, 0)
		for key, value := range items {
			options = append(options, yaml.MapItem{Key: key, Value: value})
		}

		out = append(out, yaml.MapItem{Key: name, Value: options})
	}

	var opts []yaml.EncodeOption
	if s.Indent > 0 {
		opts = append(opts, yaml.Indent(s.Indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, out, opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err).
			With(slog.String("format", s.Format))
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
