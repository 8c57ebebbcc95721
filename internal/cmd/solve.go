package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/littletsp/littletsp/internal/instance"
	"github.com/littletsp/littletsp/little"
)

var (
	solveInput     string
	solveTraceOut  string
	solveLean      bool
	solveTimeLimit time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a TSP instance file and print the optimal tour",
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instance.Load(solveInput)
		if err != nil {
			return err
		}

		opts := little.DefaultOptions()
		opts.LeanTrace = solveLean
		opts.TimeLimit = solveTimeLimit

		log.WithFields(log.Fields{
			"instance": inst.Name,
			"cities":   len(inst.Rows),
		}).Debug("starting solve")

		started := time.Now()
		res, err := little.Solve(inst.Rows, inst.Labels, opts)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"steps":   len(res.Trace),
			"cost":    res.Cost,
			"elapsed": time.Since(started),
		}).Debug("solve finished")

		fmt.Fprintf(cmd.OutOrStdout(), "instance: %s\n", inst.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "tour:     %s\n", formatTour(res))
		fmt.Fprintf(cmd.OutOrStdout(), "cost:     %g\n", res.Cost)
		fmt.Fprintf(cmd.OutOrStdout(), "steps:    %d\n", len(res.Trace))

		if solveTraceOut == "" {
			return nil
		}
		f, err := os.Create(solveTraceOut)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		if err = instance.WriteJSON(f, instance.BuildExport(inst.Name, res)); err != nil {
			return err
		}
		log.WithField("path", solveTraceOut).Debug("trace exported")

		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "TOML instance file (required)")
	solveCmd.Flags().StringVarP(&solveTraceOut, "trace", "t", "", "write the decision trace as JSON to this path")
	solveCmd.Flags().BoolVar(&solveLean, "lean", false, "omit matrix snapshots from the trace")
	solveCmd.Flags().DurationVar(&solveTimeLimit, "time-limit", 0, "soft time budget for the search (0 = unlimited)")
	_ = solveCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(solveCmd)
}

// formatTour renders the closed tour with display labels when available.
func formatTour(res little.Result) string {
	parts := make([]string, 0, len(res.Tour))
	for _, v := range res.Tour {
		if v >= 0 && v < len(res.Labels) {
			parts = append(parts, res.Labels[v])
			continue
		}
		parts = append(parts, fmt.Sprintf("%d", v))
	}

	return strings.Join(parts, " → ")
}
