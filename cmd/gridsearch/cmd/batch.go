package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/scenario"
)

type batchOpts struct {
	scenarioFile string
	compare      bool
	metricsFile  string
}

var exampleForBatchCmd = `
  gridsearch batch --scenario queries.yaml
  gridsearch batch --scenario queries.yaml --compare --metrics-file search.prom
`

// NewBatchCmd runs every query of a scenario file concurrently.
func NewBatchCmd() *cobra.Command {
	opts := &batchOpts{}
	batchCmd := &cobra.Command{
		Use:     "batch",
		Short:   "run the queries of a scenario file",
		Example: exampleForBatchCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(opts.scenarioFile)
			if err != nil {
				return err
			}
			grid, err := s.LoadGrid()
			if err != nil {
				return err
			}
			options, err := searchOptions()
			if err != nil {
				return err
			}
			queries := s.SearchQueries()

			if opts.compare {
				err = runCompare(cmd, grid, queries, options)
			} else {
				err = runBatch(cmd, grid, queries, options)
			}
			if err != nil {
				return err
			}

			if opts.metricsFile != "" {
				if err := prometheus.WriteToTextfile(opts.metricsFile, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics: %v", err)
				}
				logrus.Infof("metrics written to %s", opts.metricsFile)
			}
			return nil
		},
	}

	batchCmd.Flags().StringVarP(&opts.scenarioFile, "scenario", "s", "", "YAML scenario file")
	batchCmd.Flags().BoolVar(&opts.compare, "compare", false, "run both engines and compare costs")
	batchCmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write search metrics in Prometheus text format to this file")
	_ = batchCmd.MarkFlagRequired("scenario")
	return batchCmd
}

func runBatch(cmd *cobra.Command, grid *gridsearch.Grid, queries []gridsearch.Query, options []gridsearch.Option) error {
	results, err := gridsearch.FindPaths(cmd.Context(), grid, queries, options...)
	if err != nil {
		return err
	}

	table := newTable(cmd.OutOrStdout(), []string{"name", "from", "to", "found", "cost", "expanded", "error"})
	for _, r := range results {
		table.Append([]string{
			r.Query.Name,
			r.Query.Source.String(),
			r.Query.Target.String(),
			strconv.FormatBool(r.Result.Found),
			costCell(r),
			strconv.Itoa(r.Result.Expanded),
			errCell(r.Err),
		})
	}
	table.Render()
	return nil
}

func runCompare(cmd *cobra.Command, grid *gridsearch.Grid, queries []gridsearch.Query, options []gridsearch.Option) error {
	astar, err := gridsearch.FindPaths(cmd.Context(), grid, queries, append(options, gridsearch.WithEngine(gridsearch.AStar))...)
	if err != nil {
		return err
	}
	jps, err := gridsearch.FindPaths(cmd.Context(), grid, queries,
		append(options, gridsearch.WithEngine(gridsearch.JPS), gridsearch.WithMovement(gridsearch.EightWay))...)
	if err != nil {
		return err
	}

	table := newTable(cmd.OutOrStdout(), []string{"name", "astar cost", "jps cost", "astar expanded", "jps expanded", "agree"})
	for i := range queries {
		a, j := astar[i], jps[i]
		agree := a.Err == nil && j.Err == nil && a.Result.Found == j.Result.Found &&
			(!a.Result.Found || costsAgree(a.Result.Cost, j.Result.Cost))
		table.Append([]string{
			queries[i].Name,
			costCell(a),
			costCell(j),
			strconv.Itoa(a.Result.Expanded),
			strconv.Itoa(j.Result.Expanded),
			strconv.FormatBool(agree),
		})
	}
	table.Render()
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(true)
	table.SetAutoWrapText(false)
	return table
}

func costCell(r gridsearch.QueryResult) string {
	if r.Err != nil || !r.Result.Found {
		return "-"
	}
	return formatCost(r.Result.Cost)
}

func errCell(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func costsAgree(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
