package gridsearch

import (
	"fmt"
	"math"
)

// Cell is a grid coordinate. X is the column and Y the row; Y grows downward.
type Cell struct {
	X, Y int
}

// String provides a string representation of Cell
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + directionDX[d], Y: c.Y + directionDY[d]}
}

// Direction is one of the 8 unit moves on the grid, numbered clockwise from North.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// noDirection marks the source of a search, which was not reached by any move.
const noDirection Direction = 8

// Sqrt2 is the cost of a diagonal step.
const Sqrt2 = math.Sqrt2

var (
	directionDX = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	directionDY = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}

	directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

	left45Table   = [8]Direction{NorthWest, North, NorthEast, East, SouthEast, South, SouthWest, West}
	right45Table  = [8]Direction{NorthEast, East, SouthEast, South, SouthWest, West, NorthWest, North}
	left90Table   = [8]Direction{West, NorthWest, North, NorthEast, East, SouthEast, South, SouthWest}
	right90Table  = [8]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
	left135Table  = [8]Direction{SouthWest, West, NorthWest, North, NorthEast, East, SouthEast, South}
	right135Table = [8]Direction{SouthEast, South, SouthWest, West, NorthWest, North, NorthEast, East}
	reverseTable  = [8]Direction{South, SouthWest, West, NorthWest, North, NorthEast, East, SouthEast}
)

// orthogonalDirections and allDirections fix the neighbor order of the engines.
var (
	orthogonalDirections = []Direction{North, East, South, West}
	allDirections        = []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
)

func (d Direction) String() string {
	if d >= noDirection {
		return "-"
	}
	return directionNames[d]
}

// Delta returns the unit vector of d.
func (d Direction) Delta() (dx, dy int) {
	return directionDX[d], directionDY[d]
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool { return d%2 == 1 }

// Cost returns the movement cost of one step in direction d.
func (d Direction) Cost() float64 {
	if d.IsDiagonal() {
		return Sqrt2
	}
	return 1
}

func (d Direction) Left45() Direction   { return left45Table[d] }
func (d Direction) Right45() Direction  { return right45Table[d] }
func (d Direction) Left90() Direction   { return left90Table[d] }
func (d Direction) Right90() Direction  { return right90Table[d] }
func (d Direction) Left135() Direction  { return left135Table[d] }
func (d Direction) Right135() Direction { return right135Table[d] }
func (d Direction) Reverse() Direction  { return reverseTable[d] }

// directionBetween returns the unit direction from a toward b, derived from the
// sign of the coordinate delta. ok is false when a == b.
func directionBetween(a, b Cell) (d Direction, ok bool) {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	for i := Direction(0); i < noDirection; i++ {
		if directionDX[i] == dx && directionDY[i] == dy {
			return i, true
		}
	}
	return noDirection, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
