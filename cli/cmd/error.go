package cmd

import (
	"log/slog"
	"slices"
	"strings"
)

// Error is the error type returned by command Run methods. It pairs a
// short action description with an optional cause and a set of slog
// attributes so that failures log with full context.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns an Error describing the failed action.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error formats as "<msg>: <cause>", omitting whichever part is unset.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// LogValue renders the message, cause, and attached attributes as a
// single slog group.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e recording err as its cause. Attributes carry
// over to the copy.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With returns a copy of e carrying the additional attributes. The
// receiver is never modified, so the sentinels below stay reusable.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: slices.Concat(e.attrs, attrs),
	}
}

// Sentinels shared by the output formatters in show.
var (
	ErrJSONMarshal = NewError("marshal JSON")
	ErrYAMLMarshal = NewError("marshal YAML")
)
