package interpreter

// Position is a cell on the table. (0,0) is the south-west corner.
type Position struct {
	X, Y int
}

// Add returns p moved by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Table is the rectangular surface the robot moves on.
type Table struct {
	Width  int
	Height int
}

// DefaultTable is the 5x5 table used by every execution.
var DefaultTable = Table{Width: 5, Height: 5}

// InBounds reports whether p lies on the table.
func (t Table) InBounds(p Position) bool {
	return p.X >= 0 && p.X < t.Width && p.Y >= 0 && p.Y < t.Height
}
