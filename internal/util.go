package internal

// ReconstructPath rebuilds the path from start to current by following the
// cameFrom map backwards. It reports false when the chain is broken or loops.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) ([]NodeType, bool) {
	path := []NodeType{current}
	for current != start {
		previousNode, exists := cameFrom[current]
		if !exists || len(path) > len(cameFrom) {
			return nil, false
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
