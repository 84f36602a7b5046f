// Package profile provides optional runtime profiling for the inuse
// command.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// Without the tag, every operation is a no-op with zero overhead, and
// the --pprof-* command-line flags are absent.
//
// With the tag, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace; see [Modes]. Profile
// files are written to the configured output directory with names
// matching the mode (cpu.pprof, heap.pprof, ...), analyzable with
//
//	go tool pprof <binary> <dir>/cpu.pprof
//
// Building with the tag also imports [net/http/pprof] so applications
// that start an HTTP server expose the /debug/pprof/ endpoints.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
