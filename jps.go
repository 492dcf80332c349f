package gridsearch

// jumpPointExpander implements Jump Point Search. A popped jump point is
// expanded by scanning along a pruned set of directions; each scan walks
// until it meets the target, a cell with a forced neighbour, or a wall, and
// only the cell where it stopped is pushed onto the frontier.
//
// Forced-neighbour rules depend on the corner policy:
//
//	CornerIfOneOpen  straight: side blocked here, side open one step ahead
//	                 diagonal: 135° cell blocked, 90° cell open
//	CornerNever      straight: side open here, side blocked one step back
//	                 diagonal: never forced
type jumpPointExpander struct {
	grid    *Grid
	target  Cell
	corners CornerPolicy
	// backing array for successors
	directions [8]Direction
}

func newJumpPointExpander(grid *Grid, target Cell, corners CornerPolicy) *jumpPointExpander {
	return &jumpPointExpander{grid: grid, target: target, corners: corners}
}

func (j *jumpPointExpander) expand(s *search, current *PriorityQueueItem) {
	for _, direction := range j.successors(current.Cell, current.Direction) {
		jumpPoint, steps, ok := j.jump(current.Cell, direction)
		if !ok {
			continue
		}
		g := current.GScore + float64(steps)*direction.Cost()
		s.relax(jumpPoint, current.Cell, direction, g)
	}
}

// successors returns the directions worth scanning from a jump point reached
// by moving in direction arrived. The source has no arrival direction and
// scans all 8.
func (j *jumpPointExpander) successors(at Cell, arrived Direction) []Direction {
	out := j.directions[:0]
	if arrived == noDirection {
		return append(out, allDirections...)
	}

	out = append(out, arrived)
	if arrived.IsDiagonal() {
		out = append(out, arrived.Left45(), arrived.Right45())
		if j.corners == CornerIfOneOpen {
			if !j.grid.IsPassable(at.Step(arrived.Left135())) {
				out = append(out, arrived.Left90())
			}
			if !j.grid.IsPassable(at.Step(arrived.Right135())) {
				out = append(out, arrived.Right90())
			}
		}
		return out
	}

	sides := [2][2]Direction{
		{arrived.Left90(), arrived.Left45()},
		{arrived.Right90(), arrived.Right45()},
	}
	for _, side := range sides {
		open := j.grid.IsPassable(at.Step(side[0]))
		switch {
		case j.corners == CornerNever && open:
			out = append(out, side[0], side[1])
		case j.corners == CornerIfOneOpen && !open:
			out = append(out, side[1])
		}
	}
	return out
}

// jump scans from 'from' in direction d and returns the next jump point and
// the number of steps taken to reach it.
func (j *jumpPointExpander) jump(from Cell, d Direction) (Cell, int, bool) {
	if d.IsDiagonal() {
		return j.jumpDiagonal(from, d)
	}
	return j.jumpStraight(from, d)
}

func (j *jumpPointExpander) jumpStraight(from Cell, d Direction) (Cell, int, bool) {
	current := from
	for steps := 1; ; steps++ {
		if !j.grid.CanStep(current, d, j.corners) {
			return Cell{}, 0, false
		}
		current = current.Step(d)
		if current == j.target || j.straightForced(current, d) {
			return current, steps, true
		}
	}
}

// jumpDiagonal walks diagonally. At every cell it runs both orthogonal
// sub-scans synchronously; if either finds a jump point, the diagonal cell
// itself becomes one so that the turn goes through the frontier.
func (j *jumpPointExpander) jumpDiagonal(from Cell, d Direction) (Cell, int, bool) {
	current := from
	for steps := 1; ; steps++ {
		if !j.grid.CanStep(current, d, j.corners) {
			return Cell{}, 0, false
		}
		current = current.Step(d)
		if current == j.target || j.diagonalForced(current, d) {
			return current, steps, true
		}
		if _, _, ok := j.jumpStraight(current, d.Left45()); ok {
			return current, steps, true
		}
		if _, _, ok := j.jumpStraight(current, d.Right45()); ok {
			return current, steps, true
		}
	}
}

func (j *jumpPointExpander) straightForced(at Cell, d Direction) bool {
	g := j.grid
	if j.corners == CornerNever {
		return (g.IsPassable(at.Step(d.Left90())) && !g.IsPassable(at.Step(d.Left135()))) ||
			(g.IsPassable(at.Step(d.Right90())) && !g.IsPassable(at.Step(d.Right135())))
	}
	return (!g.IsPassable(at.Step(d.Left90())) && g.IsPassable(at.Step(d.Left45()))) ||
		(!g.IsPassable(at.Step(d.Right90())) && g.IsPassable(at.Step(d.Right45())))
}

func (j *jumpPointExpander) diagonalForced(at Cell, d Direction) bool {
	if j.corners == CornerNever {
		return false
	}
	g := j.grid
	return (!g.IsPassable(at.Step(d.Left135())) && g.IsPassable(at.Step(d.Left90()))) ||
		(!g.IsPassable(at.Step(d.Right135())) && g.IsPassable(at.Step(d.Right90())))
}
