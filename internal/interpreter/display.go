package interpreter

import (
	"fmt"
	"io"
	"strings"
)

var arrows = [...]string{
	North: "↑",
	East:  "→",
	South: "↓",
	West:  "←",
}

// Render draws the table north-up with the robot shown as an arrow. A robot
// that is not on the table is left out.
func (t Table) Render(w io.Writer, r *Robot) error {
	var b strings.Builder
	for y := t.Height - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%d ", y)
		for x := 0; x < t.Width; x++ {
			if r != nil && r.ProperlyPlaced && r.X == x && r.Y == y {
				b.WriteString(arrows[r.Facing] + " ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("  ")
	for x := 0; x < t.Width; x++ {
		fmt.Fprintf(&b, "%d ", x)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
