package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LoserLab/devourer/internal/clipboard"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == InputState {
			return m.updateInput(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

// updateView handles keys while browsing the preview.
func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		m.state = InputState
		m.input.SetValue(m.base)
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteColor(m.textOn); err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "copied " + m.textOn
		}
		return m, nil

	case key.Matches(msg, m.keys.Paste):
		pasted := clipboard.ReadColor()
		if pasted == "" {
			m.status = "clipboard has no hex color"
			return m, nil
		}
		m.setColor(pasted)
		m.status = "pasted " + pasted
		return m, nil
	}

	return m, nil
}

// updateInput handles keys while the hex input is focused.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		// Cancel editing only if there is a color to fall back to.
		if m.base != "" {
			m.state = ViewState
			m.input.Blur()
			m.err = nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		m.setColor(m.input.Value())
		if m.err == nil {
			m.state = ViewState
			m.input.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
