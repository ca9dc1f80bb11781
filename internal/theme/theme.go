// Package theme derives interaction-state color variants and expands a
// palette into a full design-system theme.
package theme

import (
	"fmt"

	"github.com/LoserLab/devourer/internal/color"
)

// Lightness factors for the derived interaction states.
const (
	hoverFactor  = 0.85 // 15% darker
	activeFactor = 0.75 // 25% darker
)

// disabledAlpha is the literal 2-digit hex alpha suffix appended to the
// disabled variant (50% opacity). The resulting 8-digit value is a display
// hint for renderers that understand #rrggbbaa; it is never parsed back.
const disabledAlpha = "80"

// StateVariants maps interaction states to colors derived from one base.
type StateVariants struct {
	Default  string `json:"default"`
	Hover    string `json:"hover"`
	Active   string `json:"active"`
	Focus    string `json:"focus"`
	Disabled string `json:"disabled"`
}

// Theme maps role names to either a StateVariants set or a nested scale
// (map of sub-keys to raw colors) passed through from the palette.
type Theme map[string]any

// Variants derives the interaction-state set for a base color. The base is
// canonicalized to lowercase "#rrggbb" first, so "#3B82F6" and "3b82f6"
// produce identical sets. Hover and active are darkened in HSL space;
// focus keeps the base color because the focus affordance is a ring, not a
// fill change.
func Variants(base string) (StateVariants, error) {
	canonical, err := color.Canonical(base)
	if err != nil {
		return StateVariants{}, err
	}

	hover, err := color.AdjustLightness(canonical, hoverFactor)
	if err != nil {
		return StateVariants{}, err
	}
	active, err := color.AdjustLightness(canonical, activeFactor)
	if err != nil {
		return StateVariants{}, err
	}

	return StateVariants{
		Default:  canonical,
		Hover:    hover,
		Active:   active,
		Focus:    canonical,
		Disabled: canonical + disabledAlpha,
	}, nil
}

// SuggestTextColor returns white or black, whichever contrasts more with
// the given background. Ties go to black.
func SuggestTextColor(background string) (string, error) {
	whiteRatio, err := color.ContrastRatio("#ffffff", background)
	if err != nil {
		return "", err
	}
	blackRatio, err := color.ContrastRatio("#000000", background)
	if err != nil {
		return "", err
	}

	if whiteRatio > blackRatio {
		return "#ffffff", nil
	}
	return "#000000", nil
}

// BuildTheme expands a palette into a theme. String entries become full
// state-variant sets; nested maps (scales like neutral.50..900) pass
// through unchanged and are not validated. Any other leaf type, or a
// string that does not decode as a color, is a format error.
func BuildTheme(palette map[string]any) (Theme, error) {
	built := make(Theme, len(palette))

	for role, value := range palette {
		switch v := value.(type) {
		case map[string]any:
			built[role] = v
		case string:
			variants, err := Variants(v)
			if err != nil {
				return nil, err
			}
			built[role] = variants
		default:
			return nil, &color.FormatError{Input: fmt.Sprintf("%s: %v", role, value)}
		}
	}

	return built, nil
}
