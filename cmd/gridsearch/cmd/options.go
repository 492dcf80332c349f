package cmd

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdrpinto/gridsearch"
)

const (
	keyEngine         = "engine"
	keyHeuristic      = "heuristic"
	keyReconstruction = "reconstruction"
	keyMovement       = "movement"
	keyCorners        = "corners"
	keyMaxExpansions  = "max-expansions"
	keyWorkers        = "workers"
)

func addSearchFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(keyEngine, "astar", "search engine: astar or jps")
	flags.String(keyHeuristic, "octile", "heuristic: octile, manhattan, euclidean or zero")
	flags.String(keyReconstruction, "dense", "path shape: dense or sparse")
	flags.String(keyMovement, "eight", "movement: eight or four")
	flags.String(keyCorners, "one-open", "diagonal corner policy: one-open or never")
	flags.Int(keyMaxExpansions, 0, "fail a search after this many expansions, 0 means unlimited")
	flags.Int(keyWorkers, runtime.NumCPU(), "concurrent searches in batch mode")

	for _, key := range []string{keyEngine, keyHeuristic, keyReconstruction, keyMovement, keyCorners, keyMaxExpansions, keyWorkers} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// searchOptions converts the resolved configuration into library options.
func searchOptions() ([]gridsearch.Option, error) {
	engine, err := gridsearch.ParseEngine(viper.GetString(keyEngine))
	if err != nil {
		return nil, err
	}
	reconstruction, err := gridsearch.ParseReconstruction(viper.GetString(keyReconstruction))
	if err != nil {
		return nil, err
	}
	movement, err := gridsearch.ParseMovement(viper.GetString(keyMovement))
	if err != nil {
		return nil, err
	}
	corners, err := gridsearch.ParseCornerPolicy(viper.GetString(keyCorners))
	if err != nil {
		return nil, err
	}

	return []gridsearch.Option{
		gridsearch.WithEngine(engine),
		gridsearch.WithHeuristic(gridsearch.ParseHeuristic(viper.GetString(keyHeuristic))),
		gridsearch.WithReconstruction(reconstruction),
		gridsearch.WithMovement(movement),
		gridsearch.WithCornerPolicy(corners),
		gridsearch.WithMaxExpansions(viper.GetInt(keyMaxExpansions)),
		gridsearch.WithWorkers(viper.GetInt(keyWorkers)),
	}, nil
}

// parseCell parses "x,y".
func parseCell(s string) (gridsearch.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridsearch.Cell{}, errors.Errorf("invalid cell %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridsearch.Cell{}, errors.Wrapf(err, "invalid x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridsearch.Cell{}, errors.Wrapf(err, "invalid y in %q", s)
	}
	return gridsearch.Cell{X: x, Y: y}, nil
}

func formatPath(path []gridsearch.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func formatCost(cost float64) string {
	return fmt.Sprintf("%.4f", cost)
}
