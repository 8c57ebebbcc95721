package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/littletsp/littletsp/internal/instance"
	"github.com/littletsp/littletsp/internal/tui/playback"
	"github.com/littletsp/littletsp/little"
)

var playInput string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve an instance and replay its decision trace step by step",
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instance.Load(playInput)
		if err != nil {
			return err
		}

		// The full run happens up front; playback is a pure trace consumer.
		res, err := little.Solve(inst.Rows, inst.Labels, little.DefaultOptions())
		if err != nil {
			return err
		}
		log.WithField("steps", len(res.Trace)).Debug("trace ready for playback")

		p := tea.NewProgram(playback.New(res), tea.WithAltScreen())
		if _, err = p.Run(); err != nil {
			return fmt.Errorf("playback: %w", err)
		}

		return nil
	},
}

func init() {
	playCmd.Flags().StringVarP(&playInput, "input", "i", "", "TOML instance file (required)")
	_ = playCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(playCmd)
}
