// Package cmd implements the inuse subcommands.
//
// Every command builds a resolution engine over the configuration sources
// and threshold carried in the context by [WithSources] and
// [WithThreshold]:
//
//   - list:  print section names, optionally filtered by an expression
//   - show:  resolve sections and print merged content (text, json, yaml)
//   - env:   render a section's environment variable plan as shell exports
//   - trace: print the resolver's diagnostic event stream for a section
//   - repl:  browse sections interactively
package cmd
