//go:build !pprof

package profile

// start is a no-op without the pprof build tag.
func start(string, string, bool) interface{ Stop() } {
	return ignore{}
}
