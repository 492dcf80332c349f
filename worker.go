package gridsearch

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Query is one source/target pair of a batch.
type Query struct {
	Name   string
	Source Cell
	Target Cell
}

// QueryResult pairs a query with its outcome. Err holds per-query failures
// such as ErrInvalidEndpoint or ErrBudgetExceeded.
type QueryResult struct {
	Query  Query
	Result Result
	Err    error
}

// FindPaths runs independent searches over one shared grid using up to
// NumberOfWorkers goroutines. Every search owns its own frontier and maps,
// so the grid is the only shared state and it is never written.
//
// Results are returned in query order. Cancelling ctx aborts the batch and
// returns the context error.
func FindPaths(ctx context.Context, grid *Grid, queries []Query, options ...Option) ([]QueryResult, error) {
	searchOptions := applyOptions(options)
	if searchOptions.NumberOfWorkers <= 0 {
		return nil, errors.Wrapf(ErrInvalidOptions, "worker count %d", searchOptions.NumberOfWorkers)
	}

	runID := uuid.NewString()
	logger := logrus.WithFields(logrus.Fields{
		"run":     runID,
		"queries": len(queries),
		"workers": searchOptions.NumberOfWorkers,
	})
	logger.Debug("starting batch")

	results := make([]QueryResult, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(searchOptions.NumberOfWorkers)
	for i := range queries {
		eg.Go(func() error {
			query := queries[i]
			result, err := FindPath(egCtx, grid, query.Source, query.Target, options...)
			if err != nil && egCtx.Err() != nil {
				return egCtx.Err()
			}
			results[i] = QueryResult{Query: query, Result: result, Err: err}
			if err != nil {
				logger.WithField("query", query.Name).Warnf("query failed: %v", err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("batch finished")
	return results, nil
}
