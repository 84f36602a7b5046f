// Package directive tokenizes raw configuration keys into operations.
//
// Keys in an inuse section encode an operation name and an optional
// operand:
//
//	use SECTION-B:
//	envvar-prepend PATH: /opt/tool/bin
//	envvar-set GREETING 'A': hello
//
// [Parse] extracts the pair. The operation name is normalized
// (dashes become underscores) so it can serve as a handler lookup key,
// while the original spelling is retained for diagnostics. Keys that do
// not match the grammar are not directives and are skipped without error.
package directive
