package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/partpick/internal/ui"
)

// UI handlers - handles window size, spinner, toast, and clipboard

// handleWindowSize handles terminal resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.ui.Width = msg.Width
	m.ui.Height = msg.Height
	m.ui.Header.SetWidth(msg.Width)
	m.ui.Help.SetSize(msg.Width, msg.Height)
	m.ui.ConfirmModal.SetSize(msg.Width, msg.Height)
	m.layout()
	return m, nil
}

// layout splits the area below the header between the browser and the build column
func (m *Model) layout() {
	headerHeight := lipgloss.Height(m.ui.Header.View())
	footerHeight := 1
	mainHeight := max(m.ui.Height-headerHeight-footerHeight, ui.MinContentHeight)

	sideWidth := min(ui.BuildPanelWidth, m.ui.Width/2)
	m.ui.Browser.SetSize(max(m.ui.Width-sideWidth-1, ui.MinContentWidth), mainHeight)
	m.ui.Build.SetSize(sideWidth, mainHeight)
	m.ui.Evaluation.SetSize(sideWidth, mainHeight)
}

// handleSpinnerTick handles spinner animation ticks
func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.ui.Header.IsLoading() {
		s, cmd := m.ui.Header.Spinner().Update(msg)
		m.ui.Header.SetSpinner(s)
		cmds = append(cmds, cmd)
	}
	if m.ui.Browser.IsLoading() {
		s, cmd := m.ui.Browser.Spinner().Update(msg)
		m.ui.Browser.SetSpinner(s)
		cmds = append(cmds, cmd)
	}
	if m.state.Session.Evaluating() {
		s, cmd := m.ui.Evaluation.Spinner().Update(msg)
		m.ui.Evaluation.SetSpinner(s)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleCopiedToClipboard handles clipboard copy confirmation
func (m Model) handleCopiedToClipboard(msg ui.CopiedToClipboardMsg) (tea.Model, tea.Cmd) {
	if !msg.Success {
		return m, m.ui.Toast.Show("Clipboard unavailable", ui.ToastWarning)
	}
	return m, m.ui.Toast.Show(FormatClipboardMessage(msg.Parts), ui.ToastInfo)
}

// FormatClipboardMessage describes a successful copy
func FormatClipboardMessage(parts int) string {
	if parts == 1 {
		return "Copied build (1 part)"
	}
	return fmt.Sprintf("Copied build (%d parts)", parts)
}
