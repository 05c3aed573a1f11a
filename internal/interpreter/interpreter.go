package interpreter

import (
	"log/slog"
	"strings"
)

// Program is the parsed form of a command input.
type Program struct {
	Statements []*Statement
}

// Statement is one non-blank input line. Err holds the parse error, raised
// only when execution reaches the line.
type Statement struct {
	Line int
	Text string
	Cmd  Command
	Err  error
}

// Result is the outcome of a program that ran to the end.
type Result struct {
	State          Snapshot `json:"position"`
	Placed         bool     `json:"placed"`
	ProperlyPlaced bool     `json:"properly_placed"`
	Report         string   `json:"report"`
}

// Parse splits input into statements. Blank lines are dropped but keep
// their place in the line numbering.
func Parse(input string) *Program {
	prog := &Program{}
	for i, text := range splitLines(input) {
		if text == "" {
			continue
		}
		cmd, err := ParseCommand(text)
		prog.Statements = append(prog.Statements, &Statement{
			Line: i + 1,
			Text: text,
			Cmd:  cmd,
			Err:  err,
		})
	}
	return prog
}

func splitLines(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// Exec runs the statements in order and stops at the first failure, which
// is returned as a *Failure. Lines before the first PLACE are discarded
// unless they are a malformed PLACE.
func (p *Program) Exec(ctx *Context) error {
	for _, st := range p.Statements {
		if !ctx.Robot.Placed && st.Cmd.Op != OpPlace {
			ctx.Log.Debug("discarded before place", "line", st.Line, "command", st.Text)
			continue
		}
		before := ctx.Robot.Snapshot()
		if err := st.Exec(ctx); err != nil {
			f := newFailure(st, before, err)
			ctx.Log.Debug("command failed",
				"line", f.Line,
				"command", f.Command,
				"reason", f.Reason,
				"before", f.Before.String(),
				"at_error", f.AtError.String(),
			)
			return f
		}
		ctx.Log.Debug("applied", "line", st.Line, "command", st.Text, "state", ctx.Robot.Snapshot().String())
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	if s.Err != nil {
		return s.Err
	}
	r := ctx.Robot
	switch s.Cmd.Op {
	case OpPlace:
		r.Place(s.Cmd.X, s.Cmd.Y, s.Cmd.Facing)
	case OpMove:
		return r.Move()
	case OpLeft:
		return r.Turn(Left)
	case OpRight:
		return r.Turn(Right)
	case OpReport:
		r.RequestReport()
	}
	return nil
}

// Execute runs input against a fresh robot on the default table. It
// returns either the final state or a *Failure.
func Execute(input string, log *slog.Logger) (*Result, error) {
	ctx := NewContext(log)
	if err := Parse(input).Exec(ctx); err != nil {
		return nil, err
	}
	return ctx.Result(), nil
}
