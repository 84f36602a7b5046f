package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/inuse/envvar"
)

// Env resolves a section and renders the environment variable commands it
// accumulated as POSIX shell export statements, suitable for eval:
//
//	eval "$(inuse env DEV)"
type Env struct {
	Section string `arg:"" help:"Section name to resolve" name:"section"`
}

// Run executes the env command.
func (e *Env) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	shared, err := engine.Resolve(e.Section)
	if err != nil {
		return err
	}

	plan := envvar.PlanFrom(shared)

	err = plan.Export(stdout(ctx), envvar.Environ(os.Environ()))
	if err != nil {
		return NewError("render exports").Wrap(err).
			With(slog.String("section", e.Section))
	}

	return nil
}
