package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse             = errors.New("parse error")
	ErrBoundaryViolation = errors.New("boundary violation")
	ErrInvalidDirection  = errors.New("invalid turn direction")
)

// DirectionError is returned by Turn for a direction other than LEFT or RIGHT.
type DirectionError struct {
	Direction TurnDirection
}

func (e *DirectionError) Error() string {
	return "Unknown turning direction"
}

func (e *DirectionError) Unwrap() error {
	return ErrInvalidDirection
}

// BoundaryError is returned by Move when the robot would fall off the table.
type BoundaryError struct {
	Before Snapshot
	After  Snapshot
}

func (e *BoundaryError) Error() string {
	return e.Reason()
}

func (e *BoundaryError) Unwrap() error {
	return ErrBoundaryViolation
}

// Reason names the axis that left the table.
func (e *BoundaryError) Reason() string {
	axis := "X"
	if e.After.X == e.Before.X {
		axis = "Y"
	}
	return axis + " Coordinate is out of bound, robot would fall"
}

// parseError carries a user-facing reason for a line that did not parse.
type parseError struct {
	reason string
}

func (e *parseError) Error() string { return e.reason }

func (e *parseError) Unwrap() error { return ErrParse }

func newParseError(format string, args ...any) error {
	return &parseError{reason: fmt.Sprintf(format, args...)}
}

// Failure describes the command that stopped an execution.
type Failure struct {
	Line    int      `json:"line"`
	Command string   `json:"command"`
	Reason  string   `json:"reason"`
	Before  Snapshot `json:"position_before_error"`
	AtError Snapshot `json:"position_at_error"`

	Err error `json:"-"`
}

func (f *Failure) Error() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Command, f.Reason)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(st *Statement, before Snapshot, err error) *Failure {
	f := &Failure{
		Line:    st.Line,
		Command: st.Text,
		Reason:  err.Error(),
		Before:  before,
		AtError: before,
		Err:     err,
	}
	var be *BoundaryError
	if errors.As(err, &be) {
		f.AtError = be.After
	}
	return f
}

// Snippet renders the failing line of src with one line of context on each
// side:
//
//	  5 | MOVE
//	> 6 | MOVE
//	  7 | LEFT
func (f *Failure) Snippet(src string) string {
	lines := splitLines(src)
	if len(lines) == 0 {
		return ""
	}
	idx := f.Line - 1
	idx = max(0, min(idx, len(lines)-1))
	from := max(0, idx-1)
	to := min(len(lines)-1, idx+1)

	width := len(fmt.Sprint(to + 1))
	var b strings.Builder
	for i := from; i <= to; i++ {
		mark := " "
		if i == idx {
			mark = ">"
		}
		fmt.Fprintf(&b, "%s %*d | %s\n", mark, width, i+1, lines[i])
	}
	return b.String()
}
