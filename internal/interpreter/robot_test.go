package interpreter

import (
	"errors"
	"testing"
)

func placed(x, y int, f Facing) *Robot {
	r := NewRobot()
	r.Place(x, y, f)
	return r
}

func testSnapshot(t *testing.T, r *Robot, x, y int, f Facing) {
	t.Helper()
	want := Snapshot{X: x, Y: y, Facing: f}
	if got := r.Snapshot(); got != want {
		t.Errorf("robot at %v, want %v", got, want)
	}
}

func TestNewRobotDefaults(t *testing.T) {
	r := NewRobot()
	testSnapshot(t, r, 0, 0, North)
	if r.Placed || r.ProperlyPlaced || r.ReportRequested {
		t.Errorf("fresh robot has flags set: %+v", r)
	}
	if r.Report() != "" {
		t.Errorf("fresh robot reports %q", r.Report())
	}
}

func TestUnplacedIgnoresCommands(t *testing.T) {
	r := NewRobot()
	if err := r.Move(); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := r.Turn(Right); err != nil {
		t.Fatalf("turn: %v", err)
	}
	r.RequestReport()
	testSnapshot(t, r, 0, 0, North)
	if r.ReportRequested {
		t.Error("report requested on unplaced robot")
	}

	r.Place(0, 0, North)
	if err := r.Move(); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := r.Turn(Right); err != nil {
		t.Fatalf("turn: %v", err)
	}
	testSnapshot(t, r, 0, 1, East)
}

func TestPlaceBoundsCheck(t *testing.T) {
	cases := []struct {
		x, y     int
		properly bool
	}{
		{0, 0, true},
		{4, 4, true},
		{2, 3, true},
		{5, 0, false},
		{0, 5, false},
		{-1, 0, false},
		{-5, -5, false},
	}
	for _, c := range cases {
		r := placed(c.x, c.y, North)
		if !r.Placed {
			t.Errorf("(%d,%d) not placed", c.x, c.y)
		}
		if r.ProperlyPlaced != c.properly {
			t.Errorf("(%d,%d) properly placed = %v, want %v", c.x, c.y, r.ProperlyPlaced, c.properly)
		}
	}
}

func TestMoveEachFacing(t *testing.T) {
	cases := []struct {
		facing Facing
		x, y   int
	}{
		{North, 2, 3},
		{East, 3, 2},
		{South, 2, 1},
		{West, 1, 2},
	}
	for _, c := range cases {
		r := placed(2, 2, c.facing)
		if err := r.Move(); err != nil {
			t.Fatalf("%v: %v", c.facing, err)
		}
		testSnapshot(t, r, c.x, c.y, c.facing)
	}
}

func TestMoveOffTable(t *testing.T) {
	cases := []struct {
		x, y   int
		facing Facing
		after  Snapshot
		reason string
	}{
		{4, 0, East, Snapshot{5, 0, East}, "X Coordinate is out of bound, robot would fall"},
		{0, 0, West, Snapshot{-1, 0, West}, "X Coordinate is out of bound, robot would fall"},
		{0, 0, South, Snapshot{0, -1, South}, "Y Coordinate is out of bound, robot would fall"},
		{3, 4, North, Snapshot{3, 5, North}, "Y Coordinate is out of bound, robot would fall"},
	}
	for _, c := range cases {
		r := placed(c.x, c.y, c.facing)
		err := r.Move()
		if !errors.Is(err, ErrBoundaryViolation) {
			t.Fatalf("(%d,%d,%v): got %v, want boundary violation", c.x, c.y, c.facing, err)
		}
		var be *BoundaryError
		if !errors.As(err, &be) {
			t.Fatalf("expected *BoundaryError, got %T", err)
		}
		if be.Before != (Snapshot{c.x, c.y, c.facing}) {
			t.Errorf("before = %v", be.Before)
		}
		if be.After != c.after {
			t.Errorf("after = %v, want %v", be.After, c.after)
		}
		if be.Error() != c.reason {
			t.Errorf("reason = %q, want %q", be.Error(), c.reason)
		}
		// rejected moves leave the robot where it was
		testSnapshot(t, r, c.x, c.y, c.facing)
	}
}

func TestMoveFromOriginNorth(t *testing.T) {
	r := placed(0, 0, North)
	if err := r.Move(); err != nil {
		t.Fatal(err)
	}
	testSnapshot(t, r, 0, 1, North)
}

func TestFallingThenTurning(t *testing.T) {
	r := placed(0, 0, South)
	if err := r.Move(); !errors.Is(err, ErrBoundaryViolation) {
		t.Fatalf("expected boundary violation, got %v", err)
	}
	if err := r.Turn(Right); err != nil {
		t.Fatal(err)
	}
	if r.Facing != West {
		t.Fatalf("facing %v, want WEST", r.Facing)
	}
	if err := r.Move(); !errors.Is(err, ErrBoundaryViolation) {
		t.Fatalf("expected boundary violation, got %v", err)
	}
}

func TestFullRotation(t *testing.T) {
	for _, start := range Facings {
		for _, d := range []TurnDirection{Left, Right} {
			r := placed(1, 1, start)
			for i := 0; i < 4; i++ {
				if err := r.Turn(d); err != nil {
					t.Fatal(err)
				}
			}
			if r.Facing != start {
				t.Errorf("four %v turns from %v ended at %v", d, start, r.Facing)
			}
		}
	}
}

func TestTurnOrder(t *testing.T) {
	right := map[Facing]Facing{North: East, East: South, South: West, West: North}
	for from, want := range right {
		if got := from.Turn(Right); got != want {
			t.Errorf("%v RIGHT = %v, want %v", from, got, want)
		}
		if got := want.Turn(Left); got != from {
			t.Errorf("%v LEFT = %v, want %v", want, got, from)
		}
	}
}

func TestTurnInvalidDirection(t *testing.T) {
	r := placed(1, 1, North)
	err := r.Turn(TurnDirection(7))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("got %v, want invalid direction", err)
	}
	if err.Error() != "Unknown turning direction" {
		t.Errorf("reason = %q", err.Error())
	}
	testSnapshot(t, r, 1, 1, North)

	// gated before the direction is looked at
	if err := NewRobot().Turn(TurnDirection(7)); err != nil {
		t.Errorf("unplaced robot: %v", err)
	}
}

func TestMoveThereAndBack(t *testing.T) {
	for _, f := range Facings {
		r := placed(2, 2, f)
		if err := r.Move(); err != nil {
			t.Fatal(err)
		}
		r.Facing = f.Turn(Right).Turn(Right)
		if err := r.Move(); err != nil {
			t.Fatal(err)
		}
		if r.Position != (Position{2, 2}) {
			t.Errorf("%v: ended at %v", f, r.Position)
		}
	}
}

func TestReport(t *testing.T) {
	r := placed(1, 2, West)
	if got := r.Report(); got != "" {
		t.Errorf("report before REPORT = %q", got)
	}
	r.RequestReport()
	first := r.Report()
	if first != "1,2,WEST" {
		t.Errorf("report = %q", first)
	}
	r.RequestReport()
	if second := r.Report(); second != first {
		t.Errorf("report changed: %q then %q", first, second)
	}
}

func TestReportOutsideTable(t *testing.T) {
	r := placed(-5, -5, North)
	if !r.Placed || r.ProperlyPlaced {
		t.Fatalf("flags: placed=%v properly=%v", r.Placed, r.ProperlyPlaced)
	}
	if got := r.Report(); got != OutsideTableReport {
		t.Errorf("report = %q", got)
	}

	for i := 0; i < 3; i++ {
		if err := r.Move(); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Turn(Right); err != nil {
		t.Fatal(err)
	}
	testSnapshot(t, r, -5, -5, North)
}

func TestReplaceOntoTable(t *testing.T) {
	r := placed(9, 9, East)
	r.Place(3, 3, South)
	if !r.ProperlyPlaced {
		t.Fatal("expected properly placed after second PLACE")
	}
	if err := r.Move(); err != nil {
		t.Fatal(err)
	}
	testSnapshot(t, r, 3, 2, South)
}

func TestParseFacing(t *testing.T) {
	cases := map[string]Facing{
		"NORTH": North,
		"east":  East,
		"South": South,
		"wEsT":  West,
	}
	for in, want := range cases {
		got, ok := ParseFacing(in)
		if !ok || got != want {
			t.Errorf("ParseFacing(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseFacing("UP"); ok {
		t.Error("ParseFacing accepted UP")
	}
}
