package resolve

import (
	"log/slog"
	"strings"

	"github.com/ardnew/inuse/directive"
	"github.com/ardnew/inuse/log"
	"github.com/ardnew/inuse/pkg"
)

// Engine resolves directive sections supplied by a [Provider].
//
// The zero value is not usable; construct with [New]. An engine owns one
// lazy merged [View] and one [Trace] collector for its lifetime. It is not
// safe for concurrent use.
type Engine struct {
	provider  Provider
	handlers  map[string]Handler
	view      *View
	trace     *Trace
	log       log.Logger
	threshold int
}

// Option applies a configuration option to an Engine under construction.
type Option func(*Engine)

// New creates an Engine reading sections from p.
//
// The `use` handler and the generic fallback are always present. Optional
// configuration can be applied using functional options like
// [WithHandler], [WithThreshold], [WithTrace], and [WithLogger].
func New(p Provider, opts ...Option) *Engine {
	e := &Engine{
		provider:  p,
		handlers:  make(map[string]Handler),
		trace:     &Trace{},
		threshold: DefaultThreshold,
	}

	e.view = newView(e)
	e.handlers["use"] = e.handleUse

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithHandler registers h for the operation named op. The name is
// normalized the same way key identifiers are, so "envvar-prepend" and
// "envvar_prepend" register the same handler.
//
// Registering the name "use" replaces the structural include handler;
// doing so without preserving its cycle check is unsafe.
func WithHandler(op string, h Handler) Option {
	return func(e *Engine) {
		e.handlers[directive.Normalize(op)] = h
	}
}

// WithHandlers registers every handler in the map; see [WithHandler].
func WithHandlers(handlers map[string]Handler) Option {
	return func(e *Engine) {
		for op, h := range handlers {
			e.handlers[directive.Normalize(op)] = h
		}
	}
}

// WithThreshold sets the severity escalation threshold, bounded to
// [ThresholdSilent] through [ThresholdAll]. See the threshold constants
// for the escalation table.
func WithThreshold(n int) Option {
	return func(e *Engine) {
		e.threshold = clampThreshold(n)
	}
}

// WithTrace enables or disables the diagnostic trace collector.
func WithTrace(enable bool) Option {
	return func(e *Engine) {
		e.trace.enabled = enable
	}
}

// WithLogger sets the logger used for resolution diagnostics. The zero
// [log.Logger] discards everything.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// View returns the engine's lazy merged view.
func (e *Engine) View() *View { return e.view }

// Trace returns the engine's trace collector. Events belong to the most
// recent top-level [Engine.Resolve] call.
func (e *Engine) Trace() *Trace { return e.trace }

// Provider returns the section provider the engine reads from.
func (e *Engine) Provider() Provider { return e.provider }

// walk is the transient state of one top-level resolution call.
type walk struct {
	// root is the section the top-level call was invoked with; generic
	// writes from every included section land in its namespace.
	root string
	// inFlight holds the section names on the active recursion path.
	// A `use` target already present here is the cycle condition. Targets
	// are removed post-order, so a section may legally be used again from
	// a sibling branch.
	inFlight map[string]bool
	// shared is the handler accumulator returned by Resolve.
	shared map[string]any
}

// Resolve walks section and every section reachable from it through `use`
// directives, dispatching each directive to its handler. It returns the
// shared accumulator the handlers populated.
//
// Each call is a fresh, total walk: the trace is cleared, a new in-flight
// set and accumulator are created, and the walk runs to completion of the
// reachable graph. Merged key/value output accumulates in the engine's
// [View] under the root section's name. Most callers query the view
// instead of calling Resolve directly; the view memoizes results and
// never re-walks a section it has already checked.
func (e *Engine) Resolve(section string) (map[string]any, error) {
	if strings.TrimSpace(section) == "" {
		return nil, pkg.ErrSectionName
	}

	e.trace.Reset()

	w := &walk{
		root:     section,
		inFlight: make(map[string]bool),
		shared:   make(map[string]any),
	}

	// Mark the root checked up front so a later cache-miss probe for the
	// same name does not re-trigger this walk.
	e.view.markChecked(section)

	err := e.resolveSection(section, w)

	return w.shared, err
}

// resolveSection is the recursive driver of the walk: one frame per
// section on the current include path.
func (e *Engine) resolveSection(name string, w *walk) error {
	e.log.Trace("enter section", slog.String("section", name))
	e.trace.add(EventSectionEntry, Field{"name", name})

	entries, err := e.provider.Entries(name)
	if err != nil {
		return err
	}

	w.inFlight[name] = true
	defer delete(w.inFlight, name)

	for _, ent := range entries {
		key := strings.TrimSpace(ent.Key)
		value := strings.Trim(strings.TrimSpace(ent.Value), `"`)

		e.log.Debug("entry",
			slog.String("section", name),
			slog.String("key", key),
			slog.String("value", value),
		)
		e.trace.add(EventSectionKeyValue,
			Field{"key", key},
			Field{"value", value},
		)

		d, ok := directive.Parse(key, value)
		if !ok {
			// Not a directive; ignored entirely, including by the
			// generic handler.
			continue
		}

		e.trace.add(EventSectionOperands,
			Field{"op1", d.Op},
			Field{"op2", d.Operand},
		)

		if err := e.dispatch(name, d, w); err != nil {
			return err
		}
	}

	e.trace.add(EventSectionExit, Field{"name", name})
	e.log.Trace("exit section", slog.String("section", name))

	return nil
}

// dispatch routes one directive to its handler, falling back to the
// generic handler for unregistered operations. A handler error aborts the
// walk; a non-success status is routed through the severity policy and,
// unless escalated, the walk continues with the next key.
func (e *Engine) dispatch(section string, d directive.Directive, w *walk) error {
	h, registered := e.handlers[d.Op]

	name := d.Op
	if !registered {
		h, name = e.handleGeneric, "generic"
	}

	e.trace.add(EventHandlerEntry, Field{"name", name})
	e.log.Trace("enter handler", slog.String("handler", name))

	st, err := h(&Params{
		Root:    w.root,
		Section: section,
		Op:      d,
		Shared:  w.shared,
		walk:    w,
		engine:  e,
	})

	e.trace.add(EventHandlerExit, Field{"name", name})
	e.log.Trace("exit handler", slog.String("handler", name))

	if err != nil {
		return err
	}

	if st != StatusOK {
		return e.event(SeverityWarning, pkg.ErrHandlerStatus.
			Wrapf("handler %q returned %q for key %q", name, st, d.Key))
	}

	return nil
}
