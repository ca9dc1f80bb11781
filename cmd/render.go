package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
)

// printJSON writes v as 2-space-indented JSON, matching every command's
// --json output shape.
func printJSON(w io.Writer, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitError(err)
	}
	fmt.Fprintln(w, string(data))
}

// swatch renders a small colored block for terminal output. Alpha-suffixed
// values ("#rrggbbaa" disabled variants) are rendered from their rgb part;
// the suffix is a display hint, not a channel we blend.
func swatch(hex string) string {
	if len(hex) == 9 {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}

// passMark renders a green check or red cross for threshold results.
func passMark(ok bool) string {
	if ok {
		return passStyle.Render("✓ pass")
	}
	return failStyle.Render("✗ fail")
}
