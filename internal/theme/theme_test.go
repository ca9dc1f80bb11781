package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoserLab/devourer/internal/color"
)

func TestVariants(t *testing.T) {
	v, err := Variants("#3B82F6")
	require.NoError(t, err)

	// Base is canonicalized to lowercase before deriving.
	assert.Equal(t, "#3b82f6", v.Default)
	assert.Equal(t, v.Default, v.Focus, "focus keeps the base fill")
	assert.Equal(t, "#3b82f680", v.Disabled, "disabled is the base plus a literal 50%% alpha suffix")

	// Hover and active are progressively darker.
	base, err := color.Luminance(v.Default)
	require.NoError(t, err)
	hover, err := color.Luminance(v.Hover)
	require.NoError(t, err)
	active, err := color.Luminance(v.Active)
	require.NoError(t, err)

	assert.Less(t, hover, base, "hover should be darker than default")
	assert.Less(t, active, hover, "active should be darker than hover")
}

func TestVariants_Achromatic(t *testing.T) {
	// Gray keeps the arithmetic exact: lightness 128/255 scales to
	// round(108.8) = 109 for hover and round(96) = 96 for active.
	v, err := Variants("#808080")
	require.NoError(t, err)

	assert.Equal(t, "#808080", v.Default)
	assert.Equal(t, "#6d6d6d", v.Hover)
	assert.Equal(t, "#606060", v.Active)
	assert.Equal(t, "#80808080", v.Disabled)
}

func TestVariants_InvalidColor(t *testing.T) {
	_, err := Variants("#zzz")
	require.Error(t, err)

	var formatErr *color.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestSuggestTextColor(t *testing.T) {
	tests := []struct {
		background string
		want       string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		// Mid-blue: black text edges out white on the WCAG ratio.
		{"#3b82f6", "#000000"},
		{"#1e1e2e", "#ffffff"},
		{"#fafafa", "#000000"},
	}

	for _, tt := range tests {
		got, err := SuggestTextColor(tt.background)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "background %s", tt.background)
	}
}

func TestSuggestTextColor_InvalidColor(t *testing.T) {
	_, err := SuggestTextColor("not-a-color")
	require.Error(t, err)
}

func TestBuildTheme(t *testing.T) {
	palette := map[string]any{
		"primary": "#3B82F6",
		"neutral": map[string]any{
			"50":  "#fafafa",
			"900": "#171717",
		},
	}

	built, err := BuildTheme(palette)
	require.NoError(t, err)
	require.Len(t, built, 2)

	primary, ok := built["primary"].(StateVariants)
	require.True(t, ok, "string leaves become state-variant sets")
	assert.Equal(t, "#3b82f6", primary.Default)
	assert.Equal(t, "#3b82f680", primary.Disabled)

	neutral, ok := built["neutral"].(map[string]any)
	require.True(t, ok, "nested scales pass through")
	assert.Equal(t, "#fafafa", neutral["50"])
	assert.Equal(t, "#171717", neutral["900"])
}

func TestBuildTheme_InvalidLeaf(t *testing.T) {
	_, err := BuildTheme(map[string]any{"primary": "nope"})
	require.Error(t, err)

	_, err = BuildTheme(map[string]any{"primary": 42})
	require.Error(t, err)

	var formatErr *color.FormatError
	_, err = BuildTheme(map[string]any{"accent": true})
	require.ErrorAs(t, err, &formatErr)
}

func TestBuildTheme_Empty(t *testing.T) {
	built, err := BuildTheme(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, built)
}
