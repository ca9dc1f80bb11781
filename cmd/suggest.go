package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LoserLab/devourer/internal/clipboard"
	"github.com/LoserLab/devourer/internal/theme"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <background>",
	Short: "Suggest white or black text for a background color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		copyToClipboard, _ := cmd.Flags().GetBool("copy")

		text, err := theme.SuggestTextColor(args[0])
		if err != nil {
			exitError(err)
		}

		if copyToClipboard {
			if err := clipboard.WriteColor(text); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
			}
		}

		if jsonOutput {
			printJSON(os.Stdout, map[string]string{"text_color": text})
			return
		}
		fmt.Printf("%s %s\n", swatch(text), text)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().Bool("json", false, "Output in JSON format")
	suggestCmd.Flags().Bool("copy", false, "Copy the suggested color to the clipboard")
}
