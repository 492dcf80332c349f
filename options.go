package gridsearch

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Engine selects the search strategy.
type Engine int

const (
	AStar Engine = iota
	JPS
)

func (e Engine) String() string {
	switch e {
	case AStar:
		return "astar"
	case JPS:
		return "jps"
	}
	return "unknown"
}

// ParseEngine maps a configuration value to an Engine.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "jps", "jump-point", "jumppoint":
		return JPS, nil
	}
	return 0, errors.Wrapf(ErrInvalidOptions, "unknown engine %q", name)
}

// Reconstruction selects the shape of the returned path.
type Reconstruction int

const (
	// Dense returns every unit cell between source and target.
	Dense Reconstruction = iota
	// Sparse returns only jump points (JPS) or turn points (A*).
	Sparse
)

func (r Reconstruction) String() string {
	switch r {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}
	return "unknown"
}

func ParseReconstruction(name string) (Reconstruction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	}
	return 0, errors.Wrapf(ErrInvalidOptions, "unknown reconstruction %q", name)
}

// Movement selects the neighbourhood used by the A* engine.
type Movement int

const (
	EightWay Movement = iota
	FourWay
)

func (m Movement) String() string {
	switch m {
	case EightWay:
		return "eight"
	case FourWay:
		return "four"
	}
	return "unknown"
}

func ParseMovement(name string) (Movement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eight", "8":
		return EightWay, nil
	case "four", "4":
		return FourWay, nil
	}
	return 0, errors.Wrapf(ErrInvalidOptions, "unknown movement %q", name)
}

// CornerPolicy decides when a diagonal step may pass between two orthogonal cells.
type CornerPolicy int

const (
	// CornerIfOneOpen allows a diagonal step when at least one of the two
	// orthogonal cells it passes is passable.
	CornerIfOneOpen CornerPolicy = iota
	// CornerNever requires both orthogonal cells to be passable.
	CornerNever
)

func (p CornerPolicy) String() string {
	switch p {
	case CornerIfOneOpen:
		return "one-open"
	case CornerNever:
		return "never"
	}
	return "unknown"
}

func ParseCornerPolicy(name string) (CornerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "one-open", "oneopen":
		return CornerIfOneOpen, nil
	case "never", "none":
		return CornerNever, nil
	}
	return 0, errors.Wrapf(ErrInvalidOptions, "unknown corner policy %q", name)
}

// Options defines parameters for the search.
type Options struct {
	Engine         Engine
	Heuristic      HeuristicKind
	Reconstruction Reconstruction
	Movement       Movement
	Corners        CornerPolicy
	// MaxExpansions caps the number of cells whose neighbours are expanded.
	// Zero means unlimited.
	MaxExpansions int
	// NumberOfWorkers bounds the concurrent searches run by FindPaths.
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns A* with the octile heuristic, dense paths,
// eight-way movement and CornerIfOneOpen.
func DefaultOptions() Options {
	return Options{
		Engine:          AStar,
		Heuristic:       Octile,
		Reconstruction:  Dense,
		Movement:        EightWay,
		Corners:         CornerIfOneOpen,
		NumberOfWorkers: runtime.NumCPU(),
	}
}

func WithEngine(engine Engine) Option {
	return func(options *Options) { options.Engine = engine }
}

func WithHeuristic(kind HeuristicKind) Option {
	return func(options *Options) { options.Heuristic = kind }
}

func WithReconstruction(mode Reconstruction) Option {
	return func(options *Options) { options.Reconstruction = mode }
}

func WithMovement(movement Movement) Option {
	return func(options *Options) { options.Movement = movement }
}

func WithCornerPolicy(policy CornerPolicy) Option {
	return func(options *Options) { options.Corners = policy }
}

// WithMaxExpansions bounds the work of a single search. A search that hits
// the bound fails with ErrBudgetExceeded.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// WithWorkers specifies how many searches FindPaths may run at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := DefaultOptions()
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

func (o Options) validate() error {
	if o.Engine != AStar && o.Engine != JPS {
		return errors.Wrapf(ErrInvalidOptions, "engine %d", o.Engine)
	}
	if o.Reconstruction != Dense && o.Reconstruction != Sparse {
		return errors.Wrapf(ErrInvalidOptions, "reconstruction %d", o.Reconstruction)
	}
	if o.Movement != EightWay && o.Movement != FourWay {
		return errors.Wrapf(ErrInvalidOptions, "movement %d", o.Movement)
	}
	if o.Corners != CornerIfOneOpen && o.Corners != CornerNever {
		return errors.Wrapf(ErrInvalidOptions, "corner policy %d", o.Corners)
	}
	if o.Engine == JPS && o.Movement == FourWay {
		return errors.Wrap(ErrInvalidOptions, "jump point search requires eight-way movement")
	}
	if o.MaxExpansions < 0 {
		return errors.Wrapf(ErrInvalidOptions, "negative expansion budget %d", o.MaxExpansions)
	}
	return nil
}
