package cmd

import (
	"context"

	"github.com/ardnew/inuse/cli/cmd/repl"
	"github.com/ardnew/inuse/log"
)

// Repl starts the interactive section browser over the loaded sources.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, engine, log.Default())
}
