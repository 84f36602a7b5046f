// Package envvar implements the environment variable directive handlers:
// envvar-set, envvar-prepend, envvar-append, envvar-remove, and
// envvar-unset.
//
// Handlers do not touch the process environment. Each directive appends
// one [Command] to an ordered [Plan] carried in the resolution
// accumulator, and the caller decides what to do with the finished plan:
// [Plan.Apply] computes the resulting environment from a snapshot, and
// [Plan.Export] renders it as POSIX shell export statements for
// eval-style consumption.
//
// List-valued mutations (prepend, append, remove) treat values as
// [os.PathListSeparator] delimited lists, manipulated with the mung
// library.
package envvar
