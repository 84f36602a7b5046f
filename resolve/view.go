package resolve

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/ardnew/inuse/pkg"
)

// Section is one merged section result: the accumulated key/value pairs of
// a section and everything it transitively includes via `use`.
//
// Keys iterate in insertion order, which is the directive encounter order
// of the walk that produced them.
type Section struct {
	keys []string
	vals map[string]string
}

func newSection() *Section {
	return &Section{vals: make(map[string]string)}
}

// Get returns the value stored under option.
func (s *Section) Get(option string) (string, bool) {
	v, ok := s.vals[option]

	return v, ok
}

// Has reports whether option is present.
func (s *Section) Has(option string) bool {
	_, ok := s.vals[option]

	return ok
}

// Len returns the number of options in the section.
func (s *Section) Len() int { return len(s.keys) }

// Keys returns the option names in insertion order. The returned slice is
// owned by the section and must be treated as read-only.
func (s *Section) Keys() []string { return s.keys }

// Items returns an iterator over key/value pairs in insertion order.
func (s *Section) Items() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.keys {
			if !yield(k, s.vals[k]) {
				return
			}
		}
	}
}

// set stores value under option only if the option is absent, and returns
// the value that remains stored. First write wins at this layer.
func (s *Section) set(option, value string) string {
	if _, ok := s.vals[option]; !ok {
		s.keys = append(s.keys, option)
		s.vals[option] = value
	}

	return s.vals[option]
}

// replace stores value under option unconditionally, preserving the
// option's original position when it already exists.
func (s *Section) replace(option, value string) {
	if _, ok := s.vals[option]; !ok {
		s.keys = append(s.keys, option)
	}

	s.vals[option] = value
}

// View is the lazy merged view over section name → resolved key/value
// result.
//
// A section is computed by the owning engine's resolver the first time it
// is queried and memoized afterward; the cache is write-once per section
// name. The view tracks two distinct states per name: "checked" (a
// resolution was attempted) and "present" (the walk produced data). A
// checked section with no data can occur when resolution raised a
// recoverable condition, and such a section reads as simply absent.
//
// The view is not safe for concurrent use; callers running resolutions
// from multiple goroutines must serialize access themselves.
type View struct {
	engine  *Engine
	data    map[string]*Section
	order   []string
	checked map[string]struct{}
}

func newView(e *Engine) *View {
	return &View{
		engine:  e,
		data:    make(map[string]*Section),
		checked: make(map[string]struct{}),
	}
}

// markChecked records that a resolution was attempted for name.
func (v *View) markChecked(name string) {
	v.checked[name] = struct{}{}
}

// ensure resolves name through the owning engine unless a resolution was
// already attempted. The checked marker is set before resolving so that a
// failed attempt is not implicitly retried.
func (v *View) ensure(name string) error {
	if _, ok := v.checked[name]; ok {
		return nil
	}

	v.markChecked(name)

	_, err := v.engine.Resolve(name)

	return err
}

// HasSection reports whether name resolves to a section with data,
// triggering resolution on first query. A section the provider does not
// know, or one whose resolution failed, reads as absent rather than
// raising.
func (v *View) HasSection(name string) bool {
	if err := v.ensure(name); err != nil {
		if !errors.Is(err, pkg.ErrSectionNotFound) {
			v.engine.log.Debug("section probe failed",
				slog.String("section", name),
				slog.Any("error", err),
			)
		}

		return false
	}

	_, ok := v.data[name]

	return ok
}

// Get resolves section on first query and returns the value stored under
// option. It fails with [pkg.ErrSectionNotFound] or [pkg.ErrOptionNotFound]
// when either is absent after resolution.
func (v *View) Get(section, option string) (string, error) {
	if err := v.ensure(section); err != nil {
		return "", err
	}

	s, ok := v.data[section]
	if !ok {
		return "", pkg.ErrSectionNotFound.Wrapf("%q", section)
	}

	value, ok := s.Get(option)
	if !ok {
		return "", pkg.ErrOptionNotFound.Wrapf("%q: %q", section, option)
	}

	return value, nil
}

// HasOption resolves section on first query and reports whether option is
// present in the merged result.
func (v *View) HasOption(section, option string) bool {
	if err := v.ensure(section); err != nil {
		return false
	}

	s, ok := v.data[section]

	return ok && s.Has(option)
}

// Section returns the cached merged result for name without triggering
// resolution.
func (v *View) Section(name string) (*Section, bool) {
	s, ok := v.data[name]

	return s, ok
}

// Sections returns the names of all cached sections in insertion order.
// The returned slice is owned by the view and must be treated as
// read-only.
func (v *View) Sections() []string { return v.order }

// Len returns the number of cached sections.
func (v *View) Len() int { return len(v.order) }

// Materialize eagerly resolves every section the provider knows so that
// [View.All] iterates the complete configuration. Sections that were
// already checked are not re-resolved.
func (v *View) Materialize() error {
	for _, name := range v.engine.provider.Sections() {
		if err := v.ensure(name); err != nil {
			return err
		}
	}

	return nil
}

// All returns an iterator over cached sections in insertion order. Call
// [View.Materialize] first to force the full configuration into the
// cache.
func (v *View) All() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		for _, name := range v.order {
			if !yield(name, v.data[name]) {
				return
			}
		}
	}
}

// Items resolves a single section on first query and returns an iterator
// over its merged key/value pairs.
func (v *View) Items(section string) (iter.Seq2[string, string], error) {
	if err := v.ensure(section); err != nil {
		return nil, err
	}

	s, ok := v.data[section]
	if !ok {
		return nil, pkg.ErrSectionNotFound.Wrapf("%q", section)
	}

	return s.Items(), nil
}

// AddSection creates an empty section if name is absent and returns it.
// It never triggers resolution.
func (v *View) AddSection(name string) *Section {
	s, ok := v.data[name]
	if !ok {
		s = newSection()
		v.data[name] = s
		v.order = append(v.order, name)
	}

	return s
}

// Set stores value under section/option, creating the section implicitly
// if absent. The option is only inserted when not already present: first
// write wins at this layer. Handlers wanting last-write-wins semantics use
// [View.Replace]. Set never triggers resolution. It returns the value that
// remains stored.
func (v *View) Set(section, option, value string) string {
	return v.AddSection(section).set(option, value)
}

// Replace stores value under section/option unconditionally, creating the
// section implicitly if absent and preserving the option's position when
// it already exists. It never triggers resolution.
func (v *View) Replace(section, option, value string) {
	v.AddSection(section).replace(option, value)
}
