package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/LoserLab/devourer/internal/color"
)

// ContrastReport is the result of checking one foreground/background pair.
type ContrastReport struct {
	Ratio   float64 `json:"ratio"`
	WcagAA  bool    `json:"wcag_aa"`
	WcagAAA bool    `json:"wcag_aaa"`
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		largeText, _ := cmd.Flags().GetBool("large")

		report, err := checkContrast(args[0], args[1], largeText)
		if err != nil {
			exitError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, report)
			return
		}
		printContrast(os.Stdout, args[0], args[1], report)
	},
}

// checkContrast computes the ratio and both threshold results for a pair.
// The ratio is rounded to two decimals for reporting.
func checkContrast(fg, bg string, largeText bool) (ContrastReport, error) {
	ratio, err := color.ContrastRatio(fg, bg)
	if err != nil {
		return ContrastReport{}, err
	}
	aa, err := color.MeetsAA(fg, bg, largeText)
	if err != nil {
		return ContrastReport{}, err
	}
	aaa, err := color.MeetsAAA(fg, bg, largeText)
	if err != nil {
		return ContrastReport{}, err
	}

	return ContrastReport{
		Ratio:   math.Round(ratio*100) / 100,
		WcagAA:  aa,
		WcagAAA: aaa,
	}, nil
}

func printContrast(w io.Writer, fg, bg string, report ContrastReport) {
	fmt.Fprintf(w, "%s %s  on  %s %s\n", swatch(fg), fg, swatch(bg), bg)
	fmt.Fprintf(w, "%s %.2f:1\n", labelStyle.Render("ratio   "), report.Ratio)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("WCAG AA "), passMark(report.WcagAA))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("WCAG AAA"), passMark(report.WcagAAA))
}

func init() {
	rootCmd.AddCommand(contrastCmd)
	contrastCmd.Flags().Bool("json", false, "Output in JSON format")
	contrastCmd.Flags().Bool("large", false, "Use the large-text thresholds (3:1 AA, 4.5:1 AAA)")
}
