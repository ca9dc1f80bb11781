// Package clipboard moves hex colors to and from the system clipboard.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/LoserLab/devourer/internal/color"
)

// ExtractColor validates clipboard-ish text and returns it in canonical
// "#rrggbb" form, or empty string if it is not a hex color.
func ExtractColor(text string) string {
	text = strings.TrimSpace(text)

	// Quick reject: anything longer than "#rrggbb" or spanning lines.
	if len(text) > 7 || strings.ContainsAny(text, "\n\r") {
		return ""
	}

	canonical, err := color.Canonical(text)
	if err != nil {
		return ""
	}
	return canonical
}

// ReadColor reads the clipboard and returns a valid hex color if one is
// there, or empty string otherwise.
func ReadColor() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return ExtractColor(text)
}

// WriteColor puts a color string on the system clipboard.
func WriteColor(s string) error {
	return clipboard.WriteAll(s)
}
