//go:build pprof

package profile

// Option adjusts the profiler control assembled by start.
type Option func(control) control

// apply folds the given options over c, left to right.
func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl returns a control with the given options applied.
func newControl(opts ...Option) control {
	return apply(control{}, opts...)
}
