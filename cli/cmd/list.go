package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/expr-lang/expr"

	"github.com/ardnew/inuse/pkg"
)

// List prints the names of every section defined across the loaded
// configuration sources, in definition order.
//
// An optional --match expression filters the listing. It is compiled with
// expr-lang and evaluated once per section with these variables in scope:
//
//	name    string            section name
//	index   int               zero-based definition order
//	options map[string]string merged key/value content after resolution
//
// For example:
//
//	inuse -c env.ini list -m 'name startsWith "DEV"'
//	inuse -c env.ini list -m 'options["stage"] == "prod"'
type List struct {
	Match string `help:"Keep only sections matching this expression (variables: name, index, options)" optional:"" short:"m"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	sections := engine.Provider().Sections()

	keep := func(string, int) (bool, error) { return true, nil }

	if l.Match != "" {
		program, err := expr.Compile(l.Match,
			expr.Env(map[string]any{
				"name":    "",
				"index":   0,
				"options": map[string]string{},
			}),
			expr.AsBool(),
		)
		if err != nil {
			return pkg.ErrFilterExpr.Wrap(err).
				Wrapf("compile %q", l.Match)
		}

		view := engine.View()

		keep = func(name string, index int) (bool, error) {
			// A section whose keys were all consumed by handlers has no
			// merged content; it is matched with an empty options map.
			options := map[string]string{}

			items, err := view.Items(name)
			if err == nil {
				maps.Insert(options, items)
			} else if !errors.Is(err, pkg.ErrSectionNotFound) {
				return false, err
			}

			out, err := expr.Run(program, map[string]any{
				"name":    name,
				"index":   index,
				"options": options,
			})
			if err != nil {
				return false, pkg.ErrFilterExpr.Wrap(err).
					Wrapf("evaluate %q", l.Match)
			}

			match, _ := out.(bool)

			return match, nil
		}
	}

	w := stdout(ctx)

	for i, name := range sections {
		match, err := keep(name, i)
		if err != nil {
			return err
		}

		if !match {
			continue
		}

		if _, err := fmt.Fprintln(w, name); err != nil {
			return NewError("write section name").Wrap(err).
				With(slog.String("section", name))
		}
	}

	return nil
}
