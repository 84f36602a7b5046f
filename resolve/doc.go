// Package resolve implements the directive resolution engine.
//
// An [Engine] walks a named section of a configuration source, parses each
// key into an operation with [directive.Parse], and dispatches it to a
// registered [Handler]. Two handlers are built in: the generic handler
// records unrecognized key/value pairs verbatim under the root section of
// the walk, and the `use` handler includes another section's directives
// in place, guarding against include cycles with a per-call in-flight set.
//
// Resolved results are served from a lazy merged [View]: the first query
// for a section triggers a full walk of that section's reachable include
// graph, and every later query is a cache hit. Structural problems such as
// include cycles or handlers reporting a non-success status are routed
// through a severity threshold ([Engine] option [WithThreshold]) that
// decides whether the condition is logged and skipped or escalated to a
// returned error.
package resolve
