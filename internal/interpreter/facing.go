package interpreter

import (
	"fmt"
	"strings"
)

// Facing is the cardinal direction the robot points to.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

// Facings is the rotation order; turning right steps forward through it.
var Facings = [...]Facing{North, East, South, West}

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

// unit displacement applied on MOVE, origin is the south-west corner
var displacement = [...]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

func (f Facing) Valid() bool {
	return f >= North && f <= West
}

func (f Facing) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Facing(%d)", int(f))
	}
	return facingNames[f]
}

// Displacement returns the step taken by one MOVE in this facing.
func (f Facing) Displacement() Position {
	return displacement[f]
}

// Turn returns the facing after turning once in direction d.
func (f Facing) Turn(d TurnDirection) Facing {
	n := len(Facings)
	step := 1
	if d == Left {
		step = n - 1
	}
	return Facings[(int(f)+step)%n]
}

// ParseFacing matches name case-insensitively against the four directions.
func ParseFacing(name string) (Facing, bool) {
	for i, n := range facingNames {
		if strings.EqualFold(n, name) {
			return Facing(i), true
		}
	}
	return North, false
}

// TurnDirection is the rotation requested by LEFT or RIGHT.
type TurnDirection int

const (
	Left TurnDirection = iota
	Right
)

func (d TurnDirection) Valid() bool {
	return d == Left || d == Right
}

func (d TurnDirection) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("TurnDirection(%d)", int(d))
}
