package gridsearch

import (
	"math"
	"strings"
)

// HeuristicFunc returns the estimated cost from cell a to cell b.
// It must never overestimate the true remaining cost.
type HeuristicFunc func(a, b Cell) float64

// HeuristicKind selects one of the built-in heuristics.
type HeuristicKind int

const (
	Octile HeuristicKind = iota
	Manhattan
	Euclidean
	Zero
)

var heuristicNames = map[HeuristicKind]string{
	Octile:    "octile",
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Zero:      "zero",
}

func (k HeuristicKind) String() string {
	if name, ok := heuristicNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseHeuristic maps a configuration value to a HeuristicKind.
// Unrecognized names fall back to Euclidean.
func ParseHeuristic(name string) HeuristicKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "octile", "octal":
		return Octile
	case "manhattan":
		return Manhattan
	case "zero", "none":
		return Zero
	default:
		return Euclidean
	}
}

// Func resolves the kind to its distance function.
func (k HeuristicKind) Func() HeuristicFunc {
	switch k {
	case Octile:
		return OctileDistance
	case Manhattan:
		return ManhattanDistance
	case Zero:
		return ZeroDistance
	default:
		return EuclideanDistance
	}
}

// ManhattanDistance is admissible for four-way movement only.
func ManhattanDistance(a, b Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// OctileDistance is the exact cost of an unobstructed eight-way route.
func OctileDistance(a, b Cell) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return float64(dx) + (Sqrt2-1)*float64(dy)
}

func EuclideanDistance(a, b Cell) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ZeroDistance turns the search into Dijkstra's algorithm.
func ZeroDistance(_, _ Cell) float64 { return 0 }
