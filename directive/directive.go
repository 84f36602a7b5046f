package directive

import (
	"regexp"
	"strings"
)

// Directive is one parsed operation line from a configuration section.
//
// A raw key of the form `op1 [op2]` selects the operation named by Op and
// carries an optional operand. The original key and value are retained so
// handlers can record them verbatim.
type Directive struct {
	// Op is the operation identifier with dashes normalized to underscores.
	// It is the name used for handler lookup.
	Op string
	// Raw is the operation identifier exactly as written, case and dashes
	// preserved. It is retained for logging and trace output.
	Raw string
	// Operand is the optional second token, unquoted if it was quoted in the
	// raw key. Empty when the key carried no operand.
	Operand string
	// Key and Value are the untouched key/value pair the directive was
	// parsed from.
	Key   string
	Value string
}

// The operation identifier is a run of letters, digits, dashes, and
// underscores. No spaces are allowed because the identifier doubles as
// the handler lookup name.
var opMatch = regexp.MustCompile(`^[\w\-]+`)

// The operand is captured one of two ways:
//   - single-quoted, which permits embedded spaces, and which takes
//     precedence wherever it appears after the identifier
//   - unquoted, a single bare token immediately following the identifier
//
// Any space-separated text following an unquoted operand is discarded.
// Sections are flat key/value lists, so two directives that would parse
// identically must still be written as distinct keys; the discarded suffix
// exists solely to keep such keys unique (e.g. `envvar-prepend PATH A` and
// `envvar-prepend PATH B` both yield operand `PATH`).
var (
	quotedMatch = regexp.MustCompile(`'([\w\- ]+)'`)
	bareMatch   = regexp.MustCompile(`^[\w\-]+`)
)

// Parse splits a raw key/value entry into a Directive.
//
// Keys that do not match the directive grammar yield ok == false and are
// ignored by directive processing; this is not an error. A matching key
// whose identifier differs from the first whitespace-delimited token of
// the input is also rejected, so the grammar cannot match a prefix of a
// lookalike key.
func Parse(key, value string) (d Directive, ok bool) {
	op := opMatch.FindString(key)
	if op == "" {
		return Directive{}, false
	}

	// The identifier must reproduce the first field of the key exactly.
	if fields := strings.Fields(key); len(fields) == 0 || op != fields[0] {
		return Directive{}, false
	}

	d.Raw = op
	d.Op = Normalize(op)
	d.Key = key
	d.Value = value

	// At most one space separates the identifier from its operand.
	rest := strings.TrimPrefix(key[len(op):], " ")

	if m := quotedMatch.FindStringSubmatch(rest); m != nil {
		d.Operand = strings.TrimSpace(m[1])
	} else if bare := bareMatch.FindString(rest); bare != "" {
		d.Operand = bare
	}

	return d, true
}

// Normalize converts an operation identifier to its handler lookup form by
// replacing dashes with underscores.
func Normalize(op string) string {
	return strings.ReplaceAll(strings.TrimSpace(op), "-", "_")
}
