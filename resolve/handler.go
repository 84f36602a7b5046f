package resolve

import (
	"log/slog"

	"github.com/ardnew/inuse/directive"
	"github.com/ardnew/inuse/log"
	"github.com/ardnew/inuse/pkg"
)

//go:generate go tool stringer --linecomment --type Status --output handler_string.go

// Status is the result a [Handler] reports to the dispatcher.
type Status int

const (
	// StatusOK indicates the handler applied the directive successfully.
	StatusOK Status = iota // ok
	// StatusWarning indicates a non-fatal problem. The dispatcher routes
	// it through the severity policy and, unless escalated, resolution
	// continues with the next key. Side effects the handler already
	// applied are not rolled back.
	StatusWarning // warning
)

// Handler applies one directive during a resolution walk.
//
// Handlers read and write the shared accumulator through [Params] and may
// record merged output in the engine's [View]. Only structural handlers
// like the built-in `use` handler are expected to descend into other
// sections.
type Handler func(p *Params) (Status, error)

// Params carries the dispatch context for one directive to a [Handler].
type Params struct {
	// Root is the section name the top-level resolution was invoked with.
	// Generic writes land in the root's namespace regardless of which
	// included section produced them.
	Root string
	// Section is the section currently being walked.
	Section string
	// Op is the parsed directive, including the raw key/value entry.
	Op directive.Directive
	// Shared is the accumulator returned by [Engine.Resolve]. It persists
	// across handlers for the duration of one top-level call.
	Shared map[string]any

	walk   *walk
	engine *Engine
}

// View returns the engine's lazy merged view for direct mutation.
func (p *Params) View() *View { return p.engine.view }

// Logger returns the engine's logger.
func (p *Params) Logger() log.Logger { return p.engine.log }

// OnPath reports whether name is currently being resolved on the active
// recursion path. A structural handler must not descend into such a
// section: that is the cycle condition.
func (p *Params) OnPath(name string) bool { return p.walk.inFlight[name] }

// Descend resolves target with the same accumulator and the same root
// namespace as the current walk. Callers are responsible for checking
// [Params.OnPath] first; descending into an in-flight section will not
// terminate.
func (p *Params) Descend(target string) error {
	return p.engine.resolveSection(target, p.walk)
}

// handleUse is the structural handler for the `use` operation: it includes
// the target section's directives in place.
//
// Registering a replacement for `use` without preserving the in-flight
// cycle check is unsafe: the walk of a cyclic include graph would never
// terminate.
func (e *Engine) handleUse(p *Params) (Status, error) {
	target := p.Op.Operand
	if target == "" {
		e.log.Warn("use directive has no target section",
			slog.String("section", p.Section),
			slog.String("key", p.Op.Key),
		)

		return StatusWarning, nil
	}

	if p.OnPath(target) {
		e.trace.add(EventCycleDetected,
			Field{"sec-src", p.Section},
			Field{"sec-dst", target},
		)

		err := NewError("use target is on the active path").
			Wrap(pkg.ErrCycleDetected.
				Wrapf("cannot load [%s] from [%s]", target, p.Section)).
			With(
				slog.String("sec-src", p.Section),
				slog.String("sec-dst", target),
			)

		return StatusOK, e.event(SeverityWarning, err)
	}

	return StatusOK, p.Descend(target)
}

// handleGeneric is the fallback for operations with no registered handler.
// It records the raw key/value pair verbatim in the merged view, under the
// namespace of the walk's root section. Later writes to the same key win.
func (e *Engine) handleGeneric(p *Params) (Status, error) {
	e.view.Replace(p.Root, p.Op.Key, p.Op.Value)

	return StatusOK, nil
}
