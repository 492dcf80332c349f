package gridsearch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pdrpinto/gridsearch"

// Result contains the outcome of a search
type Result struct {
	// Path runs from source to target inclusive; nil when not found.
	Path []Cell
	// Cost is the movement cost of Path.
	Cost float64
	// Expanded counts the cells finalized by the search.
	Expanded int
	// Found is false when the target is not connected to the source.
	Found bool
}

// FindPath searches for a cost-optimal route from source to target.
//
// An unreachable target is not an error: the Result has Found == false.
// Invalid endpoints fail with ErrInvalidEndpoint before any search work,
// an exhausted expansion budget fails with ErrBudgetExceeded, and a
// cancelled context returns its error.
func FindPath(
	contextObject context.Context,
	grid *Grid,
	source Cell,
	target Cell,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	ctx, span := otel.Tracer(tracerName).Start(contextObject, "gridsearch.FindPath",
		trace.WithAttributes(
			attribute.String("engine", searchOptions.Engine.String()),
			attribute.String("heuristic", searchOptions.Heuristic.String()),
			attribute.String("source", source.String()),
			attribute.String("target", target.String()),
		))
	defer span.End()
	started := time.Now()

	result, err := findPath(ctx, grid, source, target, searchOptions)

	elapsed := time.Since(started)
	outcome := outcomeOf(result, err)
	observeSearch(searchOptions.Engine, outcome, result.Expanded, elapsed)

	fields := logrus.Fields{
		"engine":   searchOptions.Engine,
		"source":   source,
		"target":   target,
		"outcome":  outcome,
		"expanded": result.Expanded,
		"elapsed":  elapsed,
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		logrus.WithFields(fields).Debugf("search failed: %v", err)
		return result, err
	}

	span.SetAttributes(
		attribute.Bool("found", result.Found),
		attribute.Int("expanded", result.Expanded),
		attribute.Float64("cost", result.Cost),
	)
	span.SetStatus(codes.Ok, outcome)
	logrus.WithFields(fields).WithField("cost", result.Cost).Debug("search finished")
	return result, nil
}

func findPath(ctx context.Context, grid *Grid, source, target Cell, options Options) (Result, error) {
	s, err := newSearch(grid, source, target, options)
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx)
}
