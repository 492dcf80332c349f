package gridsearch

// aStarExpander pushes every legal unit step out of the current cell.
type aStarExpander struct {
	directions []Direction
}

func (e aStarExpander) expand(s *search, current *PriorityQueueItem) {
	for _, direction := range e.directions {
		if !s.grid.CanStep(current.Cell, direction, s.options.Corners) {
			continue
		}
		neighbor := current.Cell.Step(direction)
		s.relax(neighbor, current.Cell, direction, current.GScore+direction.Cost())
	}
}
