// Package log provides structured logging for the inuse module.
//
// It wraps [log/slog] with a small, immutable configuration surface:
// output format (json or text), minimum level (including a Trace level
// below Debug for resolver walk diagnostics), timestamp layout, caller
// info, and colorized pretty printing for interactive terminals.
//
// A package-level default logger writes to standard output and is
// reconfigured with [Config]; the CLI wires its --log-* flags to it.
// The zero [Logger] value is valid and discards all messages, which lets
// library types embed a Logger without requiring callers to provide one.
package log
