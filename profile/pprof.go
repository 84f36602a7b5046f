//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the profiling modes selectable via the pprof flags when
// built with the pprof build tag. Internal switches such as "quiet" are
// not selectable and are excluded from the list.
var Modes = sync.OnceValue(
	func() []string {
		selectable := maps.Clone(modes)
		delete(selectable, "quiet")

		return slices.Sorted(maps.Keys(selectable))
	},
)

// modes maps each selectable mode name to its pkg/profile configurator.
var modes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
	"quiet":     profile.Quiet,
}

type control struct {
	opts []func(*profile.Profile)
}

// start assembles a pkg/profile session from the resolved flag values.
// An unrecognized mode yields the no-op profiler rather than an error,
// so a stale mode name in a configuration file cannot abort the run.
func start(mode, path string, quiet bool) interface{ Stop() } {
	c := newControl(withMode(mode))

	if len(c.opts) == 0 {
		return ignore{}
	}

	return profile.Start(
		apply(c, withPath(path), withQuiet(quiet)).opts...,
	)
}

func withMode(m string) Option {
	return func(c control) control {
		if fn, ok := modes[m]; ok {
			c.opts = append(c.opts, fn)
		}

		return c
	}
}

func withPath(p string) Option {
	return func(c control) control {
		if p != "" {
			c.opts = append(c.opts, profile.ProfilePath(p))
		}

		return c
	}
}

func withQuiet(v bool) Option {
	return func(c control) control {
		if v {
			c.opts = append(c.opts, profile.Quiet)
		}

		return c
	}
}
