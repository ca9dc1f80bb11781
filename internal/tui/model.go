// Package tui implements the interactive color preview.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LoserLab/devourer/internal/theme"
)

type UIState int

const (
	ViewState  UIState = iota // browsing the rendered preview
	InputState                // editing the hex input
)

// Model is the bubbletea model for the preview screen.
type Model struct {
	state UIState
	input textinput.Model

	base     string // canonical base color currently shown
	variants theme.StateVariants
	textOn   string // suggested text color for the base

	width  int
	height int

	help   help.Model
	keys   keyMap
	status string // transient feedback line (copy/paste results)
	err    error  // parse error for the last entered color
}

type keyMap struct {
	Edit  key.Binding
	Copy  key.Binding
	Paste key.Binding
	Apply key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to show in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Copy, k.Paste, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Edit, k.Copy, k.Paste}, {k.Apply, k.Back, k.Quit}}
}

var previewKeys = keyMap{
	Edit: key.NewBinding(
		key.WithKeys("e", "/"),
		key.WithHelp("e", "edit color"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy text color"),
	),
	Paste: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "paste color"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// NewModel builds the preview model for a base color. An undecodable base
// still yields a usable model with the error shown and the input focused.
func NewModel(base string) Model {
	input := textinput.New()
	input.Placeholder = "#3b82f6"
	input.CharLimit = 7
	input.Width = 12

	m := Model{
		state: ViewState,
		input: input,
		help:  help.New(),
		keys:  previewKeys,
	}
	m.setColor(base)
	if m.err != nil {
		m.state = InputState
		m.input.Focus()
	}
	return m
}

// setColor recomputes the derived state for a new base color.
func (m *Model) setColor(base string) {
	variants, err := theme.Variants(base)
	if err != nil {
		m.err = err
		return
	}

	textOn, err := theme.SuggestTextColor(variants.Default)
	if err != nil {
		m.err = err
		return
	}

	m.base = variants.Default
	m.variants = variants
	m.textOn = textOn
	m.err = nil
	m.status = ""
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the preview program for a base color.
func Run(base string) error {
	p := tea.NewProgram(NewModel(base), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
		return err
	}
	return nil
}
