// Package game implements Santa's Resource Rush: a turn-based 7x7 grid puzzle
// where the player collects gifts on the way to the target within a move budget.
package game

import (
	"fmt"

	"github.com/vovakirdan/resource-rush/internal/core"
)

// GridSize is the width and height of the board.
const GridSize = 7

// Coord is a cell position on the board, 0-indexed from the top-left.
type Coord struct {
	X, Y int
}

// Fixed corners.
var (
	StartPos  = Coord{X: GridSize - 1, Y: GridSize - 1}
	TargetPos = Coord{X: 0, Y: 0}
)

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Manhattan returns the taxicab distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return core.Abs(c.X-o.X) + core.Abs(c.Y-o.Y)
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate offset for the direction.
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{Y: -1}
	case DirDown:
		return Coord{Y: 1}
	case DirLeft:
		return Coord{X: -1}
	case DirRight:
		return Coord{X: 1}
	}
	return Coord{}
}

// directionFor maps a platform action to a direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}
