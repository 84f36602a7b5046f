package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/inuse/resolve"
)

// Trace resolves a section with the diagnostic trace collector enabled and
// prints every recorded event in order, one per line.
type Trace struct {
	Section string `arg:"" help:"Section name to resolve" name:"section"`
}

// Run executes the trace command.
func (t *Trace) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	engine, err := buildEngine(ctx, resolve.WithTrace(true))
	if err != nil {
		return err
	}

	// Print whatever was collected even when resolution fails: the partial
	// trace shows how far the walk got.
	_, rerr := engine.Resolve(t.Section)

	w := stdout(ctx)

	for _, event := range engine.Trace().Events() {
		if _, err := fmt.Fprintln(w, event.String()); err != nil {
			return err
		}
	}

	return rerr
}
