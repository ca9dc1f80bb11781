package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LoserLab/devourer/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [color]",
	Short: "Interactively preview variants and contrast for a color",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base := "#3b82f6"
		if len(args) == 1 {
			base = args[0]
		}

		if err := tui.Run(base); err != nil {
			exitError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
