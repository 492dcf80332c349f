package gridsearch

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pdrpinto/gridsearch/internal"
)

type searchState int

const (
	stateExpanding searchState = iota
	stateFound
	stateExhausted
	stateFailed
)

// expander turns a finalized frontier item into new frontier items.
type expander interface {
	expand(s *search, current *PriorityQueueItem)
}

// search owns all mutable state of one query. Only the grid is shared.
type search struct {
	grid      *Grid
	source    Cell
	target    Cell
	options   Options
	heuristic HeuristicFunc
	engine    expander

	open     *frontier
	closed   map[Cell]bool
	cameFrom map[Cell]Cell
	gScore   map[Cell]float64

	expanded int
	state    searchState
	goal     *PriorityQueueItem
}

func newSearch(grid *Grid, source, target Cell, options Options) (*search, error) {
	if grid == nil {
		return nil, errors.Wrap(ErrInvalidOptions, "nil grid")
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	if !grid.InBounds(source) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "source %v outside %dx%d grid", source, grid.width, grid.height)
	}
	if !grid.InBounds(target) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "target %v outside %dx%d grid", target, grid.width, grid.height)
	}
	if !grid.IsPassable(source) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "source %v is blocked", source)
	}
	if !grid.IsPassable(target) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "target %v is blocked", target)
	}

	s := &search{
		grid:      grid,
		source:    source,
		target:    target,
		options:   options,
		heuristic: options.Heuristic.Func(),
		open:      newFrontier(),
		closed:    make(map[Cell]bool),
		cameFrom:  make(map[Cell]Cell),
		gScore:    map[Cell]float64{source: 0},
	}
	switch options.Engine {
	case JPS:
		s.engine = newJumpPointExpander(grid, target, options.Corners)
	default:
		directions := allDirections
		if options.Movement == FourWay {
			directions = orthogonalDirections
		}
		s.engine = aStarExpander{directions: directions}
	}

	s.open.push(&PriorityQueueItem{
		Cell:      source,
		Parent:    source,
		Direction: noDirection,
		GScore:    0,
		FCost:     s.heuristic(source, target),
	})
	return s, nil
}

func (s *search) done() bool { return s.state != stateExpanding }

// step finalizes the next frontier item and expands it. Stale duplicates are
// discarded without counting as a step. It returns nil when the search ended
// without finalizing anything.
func (s *search) step(ctx context.Context) (*PriorityQueueItem, error) {
	for s.state == stateExpanding {
		if err := ctx.Err(); err != nil {
			s.state = stateFailed
			return nil, err
		}
		if s.open.len() == 0 {
			s.state = stateExhausted
			return nil, nil
		}

		current := s.open.pop()
		if s.closed[current.Cell] {
			continue
		}
		s.closed[current.Cell] = true
		s.expanded++
		if current.Cell != s.source {
			s.cameFrom[current.Cell] = current.Parent
		}

		if current.Cell == s.target {
			s.state = stateFound
			s.goal = current
			return current, nil
		}
		if s.options.MaxExpansions > 0 && s.expanded > s.options.MaxExpansions {
			s.state = stateFailed
			return current, errors.Wrapf(ErrBudgetExceeded, "limit of %d expansions reached", s.options.MaxExpansions)
		}

		s.engine.expand(s, current)
		return current, nil
	}
	return nil, nil
}

// relax pushes cell unless it is finalized or already queued at an equal or
// lower cost.
func (s *search) relax(cell, parent Cell, direction Direction, g float64) {
	if s.closed[cell] {
		return
	}
	if known, ok := s.gScore[cell]; ok && g > known-Epsilon {
		return
	}
	s.gScore[cell] = g
	s.open.push(&PriorityQueueItem{
		Cell:      cell,
		Parent:    parent,
		Direction: direction,
		GScore:    g,
		FCost:     g + s.heuristic(cell, s.target),
	})
}

func (s *search) run(ctx context.Context) (Result, error) {
	for !s.done() {
		if _, err := s.step(ctx); err != nil {
			return Result{Expanded: s.expanded}, err
		}
	}
	return s.result(), nil
}

func (s *search) result() Result {
	if s.state != stateFound {
		return Result{Expanded: s.expanded}
	}
	chain, ok := internal.ReconstructPath(s.cameFrom, s.target, s.source)
	if !ok {
		return Result{Expanded: s.expanded}
	}
	return Result{
		Path:     shapePath(chain, s.options),
		Cost:     s.goal.GScore,
		Expanded: s.expanded,
		Found:    true,
	}
}
