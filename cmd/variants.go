package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LoserLab/devourer/internal/theme"
)

var variantsCmd = &cobra.Command{
	Use:   "variants <color>",
	Short: "Generate interaction-state variants for a base color",
	Long: `Generate hover, active, focus and disabled variants for a base color.
Hover and active are darkened in HSL space; disabled carries a 50% alpha
suffix as a display hint.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		v, err := theme.Variants(args[0])
		if err != nil {
			exitError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, v)
			return
		}
		printVariants(os.Stdout, v)
	},
}

func printVariants(w io.Writer, v theme.StateVariants) {
	rows := []struct {
		state string
		color string
	}{
		{"default", v.Default},
		{"hover", v.Hover},
		{"active", v.Active},
		{"focus", v.Focus},
		{"disabled", v.Disabled},
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%s %s  %s\n", labelStyle.Render(fmt.Sprintf("%-9s", row.state)), swatch(row.color), row.color)
	}
}

func init() {
	rootCmd.AddCommand(variantsCmd)
	variantsCmd.Flags().Bool("json", false, "Output in JSON format")
}
