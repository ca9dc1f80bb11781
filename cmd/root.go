package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devourer",
	Short: "Design-system color toolkit",
	Long: `Devourer derives interaction-state color variants (hover, active,
focus, disabled) from base colors, checks WCAG contrast accessibility,
and expands palettes into complete themes.`,
	Version: Version,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// exitError prints an error to stderr and exits non-zero. Command Run
// funcs call it when a color fails to decode or an argument is unusable.
func exitError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
