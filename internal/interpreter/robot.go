package interpreter

import (
	"encoding/json"
	"fmt"
)

// OutsideTableReport is reported for a robot placed off the table.
const OutsideTableReport = "(Robot Position is Outside the Table, Report Ignored)"

// Robot holds the state of the single robot on the table.
type Robot struct {
	Position
	Facing          Facing
	Placed          bool
	ProperlyPlaced  bool
	ReportRequested bool

	table Table
}

// NewRobot returns an unplaced robot at (0,0) facing north on the default table.
func NewRobot() *Robot {
	return NewRobotOn(DefaultTable)
}

func NewRobotOn(t Table) *Robot {
	return &Robot{Facing: North, table: t}
}

func (r *Robot) Table() Table {
	return r.table
}

// Place puts the robot at (x,y). Placing off the table is allowed; the
// robot is then placed but not properly placed and ignores movement.
func (r *Robot) Place(x, y int, f Facing) {
	r.Position = Position{X: x, Y: y}
	r.Facing = f
	r.Placed = true
	r.ProperlyPlaced = r.table.InBounds(r.Position)
}

// Move steps one cell forward. A move that would leave the table is
// rejected with a *BoundaryError and the robot keeps its position.
func (r *Robot) Move() error {
	if !r.ProperlyPlaced {
		return nil
	}
	next := r.Position.Add(r.Facing.Displacement())
	if err := r.checkBounds(next); err != nil {
		return err
	}
	r.Position = next
	return nil
}

// Turn rotates the robot once to the left or right.
func (r *Robot) Turn(d TurnDirection) error {
	if !r.ProperlyPlaced {
		return nil
	}
	if !d.Valid() {
		return &DirectionError{Direction: d}
	}
	r.Facing = r.Facing.Turn(d)
	return r.checkBounds(r.Position)
}

// RequestReport marks the robot so Report returns its position.
func (r *Robot) RequestReport() {
	if !r.ProperlyPlaced {
		return
	}
	r.ReportRequested = true
}

func (r *Robot) checkBounds(next Position) error {
	if r.table.InBounds(next) {
		return nil
	}
	return &BoundaryError{
		Before: r.Snapshot(),
		After:  Snapshot{X: next.X, Y: next.Y, Facing: r.Facing},
	}
}

// Report renders the position as "X,Y,FACING".
func (r *Robot) Report() string {
	switch {
	case r.Placed && !r.ProperlyPlaced:
		return OutsideTableReport
	case r.Placed && r.ReportRequested:
		return r.Snapshot().String()
	}
	return ""
}

func (r *Robot) Snapshot() Snapshot {
	return Snapshot{X: r.X, Y: r.Y, Facing: r.Facing}
}

// Snapshot is a copy of the robot position and facing.
type Snapshot struct {
	X, Y   int
	Facing Facing
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%d,%d,%s", s.X, s.Y, s.Facing)
}

// MarshalJSON encodes the snapshot as [x, y, "FACING"].
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.X, s.Y, s.Facing.String()})
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("snapshot: want 3 elements, got %d", len(raw))
	}
	var name string
	if err := json.Unmarshal(raw[0], &s.X); err != nil {
		return fmt.Errorf("snapshot x: %w", err)
	}
	if err := json.Unmarshal(raw[1], &s.Y); err != nil {
		return fmt.Errorf("snapshot y: %w", err)
	}
	if err := json.Unmarshal(raw[2], &name); err != nil {
		return fmt.Errorf("snapshot facing: %w", err)
	}
	f, ok := ParseFacing(name)
	if !ok {
		return fmt.Errorf("snapshot facing: unknown %q", name)
	}
	s.Facing = f
	return nil
}
