package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LoserLab/devourer/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme <palette>",
	Short: "Expand a palette into a full theme with state variants",
	Long: `Expand a palette into a theme. The palette is a JSON object mapping
role names to base colors or to nested scales; it can be passed inline,
as a file path, or as '-' to read from stdin.

  devourer theme '{"primary": "#3B82F6", "neutral": {"50": "#fafafa"}}'
  devourer theme palette.json
  cat palette.json | devourer theme -`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		palette, err := readPalette(args[0], os.Stdin)
		if err != nil {
			exitError(err)
		}

		built, err := theme.BuildTheme(palette)
		if err != nil {
			exitError(err)
		}

		printJSON(os.Stdout, built)
	},
}

// readPalette loads a palette from inline JSON, stdin ("-"), or a file.
func readPalette(arg string, stdin io.Reader) (map[string]any, error) {
	var data []byte
	switch {
	case arg == "-":
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read palette from stdin: %w", err)
		}
	case strings.HasPrefix(strings.TrimSpace(arg), "{"):
		data = []byte(arg)
	default:
		var err error
		data, err = os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read palette file: %w", err)
		}
	}

	var palette map[string]any
	if err := json.Unmarshal(data, &palette); err != nil {
		return nil, fmt.Errorf("invalid palette JSON: %w", err)
	}
	return palette, nil
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
