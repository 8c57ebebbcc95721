// Package cmd implements the littletsp command-line interface.
//
// The CLI is a thin collaborator around the solver core: it loads TOML
// instance files, runs the engine, prints or exports results, and can
// replay the decision trace step by step in a TUI. All algorithmic work
// happens in the little package; this layer only does I/O.
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "littletsp",
	Short: "Exact TSP solving via Little branch-and-bound",
	Long: `littletsp solves the Travelling Salesman Problem exactly using the
Little branch-and-bound method and records every algorithm decision as a
step trace for inspection and playback.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)

		return 1
	}

	return 0
}
