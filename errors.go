package gridsearch

import "github.com/pkg/errors"

var (
	// ErrInvalidEndpoint is returned before any search work when the source or
	// target is out of bounds or blocked.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrBudgetExceeded is returned when a search hits WithMaxExpansions.
	// It is distinct from an unreachable target, which is not an error.
	ErrBudgetExceeded = errors.New("search budget exceeded")
	ErrInvalidOptions = errors.New("invalid search options")
	ErrMalformedGrid  = errors.New("malformed grid")
)
