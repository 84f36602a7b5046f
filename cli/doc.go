// Package cli contains the command line interface for inuse.
//
// # Usage
//
// Configuration sources are given with --config (repeatable) and feed one
// merged document; "-" reads INI from stdin, and a bare file name is
// searched for in the working directory and each of its ancestors:
//
//	inuse -c .env.ini show DEV
//	inuse -c base.yml -c local.ini list
//	eval "$(inuse -c .env.ini env DEV)"
//
// The severity escalation threshold is set with --threshold (0 silences
// everything short of hard failures, 5 escalates every diagnostic).
//
// # Flags
//
// Logging is configured with the --log-* flags (level, format, pretty,
// caller, time layout). Profiling flags (--pprof-*) are compiled in only
// with the pprof build tag.
//
// Flag defaults may also come from the user configuration directory:
// config.json (JSON) or config.ini (section [config]), with command-line
// values taking precedence.
package cli
