package envvar

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/mung"
)

//go:generate go tool stringer --linecomment --type Action --output action_string.go

// Action identifies one kind of environment variable mutation.
type Action int

const (
	ActionSet     Action = iota // set
	ActionPrepend               // prepend
	ActionAppend                // append
	ActionRemove                // remove
	ActionUnset                 // unset
)

// Command is one recorded environment variable mutation.
type Command struct {
	Action Action
	Name   string
	Value  string
}

// Plan is an ordered list of environment variable mutations accumulated
// during a resolution walk.
type Plan struct {
	commands []Command
}

// SharedKey is the accumulator key under which handlers store the *Plan.
const SharedKey = "envvar-plan"

// PlanFrom returns the Plan stored in the given accumulator, creating
// and storing one if absent.
func PlanFrom(shared map[string]any) *Plan {
	if plan, ok := shared[SharedKey].(*Plan); ok {
		return plan
	}

	plan := &Plan{}
	shared[SharedKey] = plan

	return plan
}

// Commands returns the recorded mutations in order.
func (p *Plan) Commands() []Command {
	return slices.Clone(p.commands)
}

// Len returns the number of recorded mutations.
func (p *Plan) Len() int { return len(p.commands) }

func (p *Plan) add(cmd Command) {
	p.commands = append(p.commands, cmd)
}

// Apply computes the environment that results from replaying the plan
// over the given snapshot. The snapshot is not modified. Values may
// reference other variables with $NAME or ${NAME}; references resolve
// against the evolving environment at the point of use.
func (p *Plan) Apply(env map[string]string) map[string]string {
	result := maps.Clone(env)
	if result == nil {
		result = map[string]string{}
	}

	expand := func(s string) string {
		return os.Expand(s, func(name string) string {
			return result[name]
		})
	}

	delim := string(os.PathListSeparator)

	for _, cmd := range p.commands {
		value := expand(cmd.Value)
		current := result[cmd.Name]

		switch cmd.Action {
		case ActionSet:
			result[cmd.Name] = value

		case ActionPrepend:
			if current == "" {
				result[cmd.Name] = value

				break
			}

			result[cmd.Name] = mung.Make(
				mung.WithSubjectItems(current),
				mung.WithDelim(delim),
				mung.WithPrefixItems(value),
			).String()

		case ActionAppend:
			if current == "" {
				result[cmd.Name] = value

				break
			}

			result[cmd.Name] = mung.Make(
				mung.WithSubjectItems(current),
				mung.WithDelim(delim),
				mung.WithSuffixItems(value),
			).String()

		case ActionRemove:
			result[cmd.Name] = mung.Make(
				mung.WithSubjectItems(current),
				mung.WithDelim(delim),
				mung.WithFilter(func(item string) bool {
					return item != value
				}),
			).String()

		case ActionUnset:
			delete(result, cmd.Name)
		}
	}

	return result
}

// Export writes the plan's effect on the given snapshot as POSIX shell
// statements, one per mutated variable, in first-mutation order. Unset
// variables emit an unset statement.
func (p *Plan) Export(w io.Writer, env map[string]string) error {
	result := p.Apply(env)

	var order []string
	seen := map[string]bool{}

	for _, cmd := range p.commands {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			order = append(order, cmd.Name)
		}
	}

	for _, name := range order {
		value, ok := result[name]
		if !ok {
			if _, err := fmt.Fprintf(w, "unset %s\n", name); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(
			w, "export %s=%s\n", name, shellQuote(value),
		); err != nil {
			return err
		}
	}

	return nil
}

// Environ flattens an os.Environ-style list into a map.
func Environ(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			env[name] = value
		}
	}

	return env
}

// shellQuote single-quotes a value for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
