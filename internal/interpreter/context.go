package interpreter

import (
	"io"
	"log/slog"
)

// Context stores the robot a program drives and the logger it reports to.

type Context struct {
	Robot *Robot
	Log   *slog.Logger
}

// NewContext returns a context with a fresh robot. A nil logger discards.
func NewContext(log *slog.Logger) *Context {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Context{Robot: NewRobot(), Log: log}
}

// Result reports the robot as it currently stands. After a failed run this
// is the state before the failing command.
func (c *Context) Result() *Result {
	r := c.Robot
	return &Result{
		State:          r.Snapshot(),
		Placed:         r.Placed,
		ProperlyPlaced: r.ProperlyPlaced,
		Report:         r.Report(),
	}
}
