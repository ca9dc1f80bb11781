package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LoserLab/devourer/internal/color"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <color> <factor>",
	Short: "Scale the HSL lightness of a color",
	Long: `Scale the HSL lightness of a color by a factor. A factor below 1
darkens, above 1 lightens; the result saturates at black and white.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		factor, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			exitError(fmt.Errorf("invalid factor %q: %w", args[1], err))
		}

		adjusted, err := color.AdjustLightness(args[0], factor)
		if err != nil {
			exitError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, map[string]string{"color": adjusted})
			return
		}
		fmt.Printf("%s %s\n", swatch(adjusted), adjusted)
	},
}

func init() {
	rootCmd.AddCommand(adjustCmd)
	adjustCmd.Flags().Bool("json", false, "Output in JSON format")
}
