package tui

import "github.com/charmbracelet/lipgloss"

// === UI Palette ===
var (
	ColorAccent    = lipgloss.Color("#bd93f9")
	ColorHighlight = lipgloss.Color("#ff79c6")
	ColorBorder    = lipgloss.Color("#44475a")
	ColorText      = lipgloss.Color("#f8f8f2")
	ColorMuted     = lipgloss.Color("#a9b1d6")
)

// === Semantic State Colors ===
var (
	ColorPass  = lipgloss.Color("#50fa7b") // threshold met
	ColorFail  = lipgloss.Color("#ff5555") // threshold missed
	ColorError = lipgloss.Color("#ff5555") // bad input
)
