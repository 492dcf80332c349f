package gridsearch

// shapePath converts the predecessor chain of a finished search into the
// requested reconstruction. A* chains are unit steps, JPS chains are jump
// points; consecutive points are always on one of the 8 lines.
func shapePath(chain []Cell, options Options) []Cell {
	if options.Reconstruction == Dense {
		return densify(chain)
	}
	if options.Engine == AStar {
		return turnPoints(chain)
	}
	return append([]Cell(nil), chain...)
}

// densify inserts every unit cell between consecutive points by stepping
// toward the next point by the sign of the coordinate delta.
func densify(points []Cell) []Cell {
	if len(points) == 0 {
		return nil
	}
	dense := make([]Cell, 1, len(points))
	dense[0] = points[0]
	current := points[0]
	for _, next := range points[1:] {
		for current != next {
			direction, _ := directionBetween(current, next)
			current = current.Step(direction)
			dense = append(dense, current)
		}
	}
	return dense
}

// turnPoints keeps the endpoints and every cell where the direction changes.
func turnPoints(path []Cell) []Cell {
	if len(path) <= 2 {
		return append([]Cell(nil), path...)
	}
	sparse := []Cell{path[0]}
	for i := 1; i < len(path)-1; i++ {
		in, _ := directionBetween(path[i-1], path[i])
		out, _ := directionBetween(path[i], path[i+1])
		if in != out {
			sparse = append(sparse, path[i])
		}
	}
	return append(sparse, path[len(path)-1])
}

// PathCost sums the octile distance between consecutive points, so a sparse
// path and its dense expansion have the same cost.
func PathCost(path []Cell) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += OctileDistance(path[i-1], path[i])
	}
	return cost
}
