package gridsearch

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// Blocked and Passable are the only cell values a Grid accepts.
	Blocked  byte = 0
	Passable byte = 1
)

// Grid is an immutable binary occupancy map stored in row-major order.
// It is safe for concurrent reads by any number of searches.
type Grid struct {
	width  int
	height int
	cells  []byte
}

// NewGrid creates a grid from width*height row-major cells, 1 = passable and
// 0 = blocked. The cells are copied.
func NewGrid(width, height int, cells []byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrMalformedGrid, "invalid dimensions %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, errors.Wrapf(ErrMalformedGrid, "expected %d cells for %dx%d, got %d", width*height, width, height, len(cells))
	}
	for i, v := range cells {
		if v != Blocked && v != Passable {
			return nil, errors.Wrapf(ErrMalformedGrid, "cell (%d,%d) has value %d", i%width, i/width, v)
		}
	}
	owned := make([]byte, len(cells))
	copy(owned, cells)
	return &Grid{width: width, height: height, cells: owned}, nil
}

// NewOpenGrid creates a grid where every cell is passable.
func NewOpenGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrMalformedGrid, "invalid dimensions %dx%d", width, height)
	}
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = Passable
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds checks if a cell is within grid bounds
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsPassable reports whether c can be entered. Out-of-bounds cells are blocked.
func (g *Grid) IsPassable(c Cell) bool {
	return g.passable(c.X, c.Y)
}

func (g *Grid) passable(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x] == Passable
}

// CanStep reports whether one move from c in direction d is legal: the
// destination must be passable, and a diagonal move must also satisfy the
// corner policy for the two orthogonal cells it passes between.
func (g *Grid) CanStep(c Cell, d Direction, corners CornerPolicy) bool {
	dx, dy := d.Delta()
	if !g.passable(c.X+dx, c.Y+dy) {
		return false
	}
	if !d.IsDiagonal() {
		return true
	}
	horizontal := g.passable(c.X+dx, c.Y)
	vertical := g.passable(c.X, c.Y+dy)
	if corners == CornerNever {
		return horizontal && vertical
	}
	return horizontal || vertical
}

// String renders the grid in the digit format read by the mapfile package.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteByte('0' + g.cells[y*g.width+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
