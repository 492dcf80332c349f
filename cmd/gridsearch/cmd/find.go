package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/mapfile"
)

type findOpts struct {
	mapFile string
	from    string
	to      string
	sparse  bool
}

var exampleForFindCmd = `
  gridsearch find --map arena.txt --from 0,0 --to 31,31
  gridsearch find --map arena.txt --from 0,0 --to 31,31 --engine jps --sparse
`

// NewFindCmd runs a single query and prints the path.
func NewFindCmd() *cobra.Command {
	opts := &findOpts{}
	findCmd := &cobra.Command{
		Use:     "find",
		Short:   "find the shortest path between two cells",
		Example: exampleForFindCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parseCell(opts.from)
			if err != nil {
				return err
			}
			target, err := parseCell(opts.to)
			if err != nil {
				return err
			}
			grid, err := mapfile.Load(opts.mapFile)
			if err != nil {
				return err
			}
			options, err := searchOptions()
			if err != nil {
				return err
			}
			if opts.sparse {
				options = append(options, gridsearch.WithReconstruction(gridsearch.Sparse))
			}

			result, err := gridsearch.FindPath(cmd.Context(), grid, source, target, options...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Found {
				fmt.Fprintf(out, "no path from %v to %v (expanded %d)\n", source, target, result.Expanded)
				return nil
			}
			fmt.Fprintf(out, "path: %s\n", formatPath(result.Path))
			fmt.Fprintf(out, "cost: %s\n", formatCost(result.Cost))
			fmt.Fprintf(out, "expanded: %d\n", result.Expanded)
			return nil
		},
	}

	findCmd.Flags().StringVarP(&opts.mapFile, "map", "m", "", "map file, one row of 0/1 digits per line")
	findCmd.Flags().StringVar(&opts.from, "from", "", "source cell as x,y")
	findCmd.Flags().StringVar(&opts.to, "to", "", "target cell as x,y")
	findCmd.Flags().BoolVar(&opts.sparse, "sparse", false, "print only turn or jump points")
	_ = findCmd.MarkFlagRequired("map")
	_ = findCmd.MarkFlagRequired("from")
	_ = findCmd.MarkFlagRequired("to")
	return findCmd
}
