package format

import (
	"errors"
	"fmt"
)

var (
	// ErrDefect marks a malformed tree or a broken invariant of the engine.
	ErrDefect = errors.New("format: internal defect")
	// ErrSyntax is returned when the source does not parse.
	ErrSyntax = errors.New("format: source has syntax errors")
	// ErrNotIdempotent is returned by CheckRoundTrip when a second pass changes the output.
	ErrNotIdempotent = errors.New("format: output is not stable under reformatting")
	// ErrShapeChanged is returned by CheckRoundTrip when definitions or comments were lost.
	ErrShapeChanged = errors.New("format: formatting changed the document structure")
)

// DefectError describes a defect raised while patching or rendering.
type DefectError struct {
	Msg string
}

func (e *DefectError) Error() string { return "format: internal defect: " + e.Msg }

func (e *DefectError) Unwrap() error { return ErrDefect }

func defect(format string, args ...any) {
	panic(&DefectError{Msg: fmt.Sprintf(format, args...)})
}

// recoverDefect converts a defect panic into *err; other panics propagate.
func recoverDefect(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if de, ok := r.(*DefectError); ok {
		*err = de
		return
	}
	panic(r)
}
