package envvar

import (
	"log/slog"

	"github.com/ardnew/inuse/resolve"
)

// Handlers returns the environment variable handlers keyed by operation
// name, ready to pass to [resolve.WithHandlers].
func Handlers() map[string]resolve.Handler {
	return map[string]resolve.Handler{
		"envvar-set":     makeHandler(ActionSet),
		"envvar-prepend": makeHandler(ActionPrepend),
		"envvar-append":  makeHandler(ActionAppend),
		"envvar-remove":  makeHandler(ActionRemove),
		"envvar-unset":   makeHandler(ActionUnset),
	}
}

// makeHandler returns a handler that records one mutation of the given
// action in the walk's shared [Plan].
func makeHandler(action Action) resolve.Handler {
	return func(p *resolve.Params) (resolve.Status, error) {
		name := p.Op.Operand
		if name == "" {
			p.Logger().Warn("envvar directive has no variable name",
				slog.String("section", p.Section),
				slog.String("key", p.Op.Key),
			)

			return resolve.StatusWarning, nil
		}

		PlanFrom(p.Shared).add(Command{
			Action: action,
			Name:   name,
			Value:  p.Op.Value,
		})

		p.Logger().Trace("recorded envvar mutation",
			slog.String("action", action.String()),
			slog.String("name", name),
			slog.String("value", p.Op.Value),
		)

		return resolve.StatusOK, nil
	}
}
