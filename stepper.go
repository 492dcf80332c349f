package gridsearch

import (
	"context"
	"maps"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Open      map[Cell]bool
	Closed    map[Cell]bool
	CameFrom  map[Cell]Cell
	Done      bool
	Found     bool
	Path      []Cell
	Cost      float64
	StepIndex int
}

// Stepper drives a search one finalized cell at a time so that callers can
// render the frontier between steps.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc
	search *search

	stepCount int
	result    Result
	err       error
}

// NewStepper validates the query and prepares a search without expanding
// anything. Call Close when done to release the derived context.
func NewStepper(
	parent context.Context,
	grid *Grid,
	source Cell,
	target Cell,
	options ...Option,
) (*Stepper, error) {
	s, err := newSearch(grid, source, target, applyOptions(options))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(parent)
	return &Stepper{ctx: ctx, cancel: cancel, search: s}, nil
}

// Close cancels the stepper's context
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step finalizes one cell and returns a snapshot. Once the search is done
// every further call returns the final snapshot and the terminating error,
// if any.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.search.done() {
		return s.snapshot(Cell{}), s.err
	}

	current, err := s.search.step(s.ctx)
	if err != nil {
		s.err = err
	}
	var at Cell
	if current != nil {
		s.stepCount++
		at = current.Cell
	}
	if s.search.state == stateFound || s.search.state == stateExhausted {
		s.result = s.search.result()
	}
	return s.snapshot(at), s.err
}

// Result returns the outcome once the stepper reports Done.
func (s *Stepper) Result() Result {
	return s.result
}

func (s *Stepper) snapshot(current Cell) StepSnapshot {
	return StepSnapshot{
		Current:   current,
		Open:      s.search.open.cells(),
		Closed:    maps.Clone(s.search.closed),
		CameFrom:  maps.Clone(s.search.cameFrom),
		Done:      s.search.done(),
		Found:     s.result.Found,
		Path:      s.result.Path,
		Cost:      s.result.Cost,
		StepIndex: s.stepCount,
	}
}
