package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/LoserLab/devourer/internal/color"
)

const (
	swatchWidth = 10
	rampWidth   = 50
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	statusStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.state == InputState {
		return m.viewInput()
	}

	sections := []string{
		titleStyle.Render("devourer preview"),
		"",
		m.viewVariants(),
		"",
		m.viewRamp(),
		"",
		m.viewContrast(),
	}

	if m.status != "" {
		sections = append(sections, "", statusStyle.Render(m.status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}

func (m Model) viewInput() string {
	lines := []string{
		titleStyle.Render("Enter a hex color"),
		"",
		m.input.View(),
	}
	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}
	lines = append(lines, "", m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}

// viewVariants renders one labeled swatch per interaction state.
func (m Model) viewVariants() string {
	rows := []struct {
		state string
		color string
	}{
		{"default", m.variants.Default},
		{"hover", m.variants.Hover},
		{"active", m.variants.Active},
		{"focus", m.variants.Focus},
		{"disabled", m.variants.Disabled},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s",
			labelStyle.Render(fmt.Sprintf("%-9s", row.state)),
			renderSwatch(row.color),
			valueStyle.Render(row.color)))
	}
	return b.String()
}

// viewRamp renders a perceptual lightness ramp around the base color, from
// the active (darkest) variant up to a strongly lightened version.
func (m Model) viewRamp() string {
	light, err := color.AdjustLightness(m.base, 1.5)
	if err != nil {
		return ""
	}

	from, err := colorful.Hex(m.variants.Active)
	if err != nil {
		return ""
	}
	to, err := colorful.Hex(light)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("ramp      "))
	for i := 0; i < rampWidth; i++ {
		t := float64(i) / float64(rampWidth-1)
		cell := from.BlendLuv(to, t).Clamped().Hex()
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(cell)).Render(" "))
	}
	return b.String()
}

// viewContrast renders the WCAG panel: ratio against white and black plus
// the suggested text color.
func (m Model) viewContrast() string {
	whiteRatio, err := color.ContrastRatio("#ffffff", m.base)
	if err != nil {
		return ""
	}
	blackRatio, err := color.ContrastRatio("#000000", m.base)
	if err != nil {
		return ""
	}

	lines := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("vs white "), renderRatio(whiteRatio)),
		fmt.Sprintf("%s %s", labelStyle.Render("vs black "), renderRatio(blackRatio)),
		fmt.Sprintf("%s %s  %s", labelStyle.Render("text     "), renderSwatch(m.textOn), valueStyle.Render(m.textOn)),
	}
	return strings.Join(lines, "\n")
}

// renderRatio formats a contrast ratio with AA/AAA pass marks for normal text.
func renderRatio(ratio float64) string {
	aa := mark(ratio >= 4.5, "AA")
	aaa := mark(ratio >= 7.0, "AAA")
	return fmt.Sprintf("%s  %s %s", valueStyle.Render(fmt.Sprintf("%5.2f:1", ratio)), aa, aaa)
}

func mark(ok bool, label string) string {
	if ok {
		return lipgloss.NewStyle().Foreground(ColorPass).Render(label + " ✓")
	}
	return lipgloss.NewStyle().Foreground(ColorFail).Render(label + " ✗")
}

// renderSwatch draws a color block. Alpha-suffixed disabled values render
// from their rgb part; the suffix is only a display hint.
func renderSwatch(hex string) string {
	if len(hex) == 9 {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
}
