package pkg

// Sentinel errors for the inuse module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrSectionName is returned when the top-level resolver entry point is
// given an empty section name.
//
// This is a caller contract violation and is never downgraded by the
// severity policy.
var ErrSectionName = MakeErrorf("section name must not be empty")

// ErrSectionNotFound is returned when a requested section does not exist
// in the section provider.
//
// This error should be wrapped with the name of the section that was
// not found.
var ErrSectionNotFound = MakeErrorf("section not found")

// ErrOptionNotFound is returned when a resolved section does not contain
// a requested option.
//
// This error should be wrapped with the section and option names.
var ErrOptionNotFound = MakeErrorf("option not found")

// ErrCycleDetected is returned when a `use` directive refers to a section
// that is already being resolved on the current recursion path.
//
// This error should be wrapped with the source and destination section
// names. Under the default severity policy it is reported as a warning
// and resolution continues.
var ErrCycleDetected = MakeErrorf("cycle detected in use dependencies")

// ErrHandlerStatus is returned when an operation handler reports a
// non-success status.
//
// This error should be wrapped with the handler name and the status value.
var ErrHandlerStatus = MakeErrorf("handler returned non-success status")

// ErrNoSources is returned when a file-backed section provider is created
// without any input files.
var ErrNoSources = MakeErrorf("no configuration file(s) were provided")

// ErrReadInput is returned when reading configuration input fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrFileNotFound is returned when configuration file discovery fails to
// locate the requested file name.
//
// This error should be wrapped with the file name and search root.
var ErrFileNotFound = MakeErrorf("configuration file not found")

// ErrInvalidFormat is returned when an invalid output format is specified.
//
// This error should be wrapped with additional context that specifies the
// invalid format along with a list of valid formats.
var ErrInvalidFormat = MakeErrorf("invalid format")

// ErrFilterExpr is returned when a section filter expression fails to
// compile or evaluate.
//
// This error should be wrapped with the underlying expr error.
var ErrFilterExpr = MakeErrorf("invalid filter expression")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether any error in the chain matches the target.
//
// Two chained errors match when the target is itself an [Error] whose
// entries all appear, in order, at the head of the receiver's chain.
// This makes errors.Is work for sentinel values constructed by
// [MakeErrorf] after additional context has been appended with [Wrap].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	if len(t) > len(e) {
		return false
	}

	for i, err := range t {
		if e[i].Error() != err.Error() {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, sub := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(sub)...)
		}

		return chain
	}

	return append(chain, err)
}
