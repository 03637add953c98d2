package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/partpick/internal/ui"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.ui.Header.View()
	footer := m.renderFooter()

	headerHeight := lipgloss.Height(header)
	mainHeight := max(m.ui.Height-headerHeight-lipgloss.Height(footer), 1)

	browser := lipgloss.NewStyle().
		Width(m.ui.Browser.Width()).
		Height(mainHeight).
		Render(m.ui.Browser.View())
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.ui.Build.View(),
		m.ui.Evaluation.View(),
	)
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, browser, " ", side)
	mainArea = lipgloss.NewStyle().MaxHeight(mainHeight).Render(mainArea)

	fullView := lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)

	switch m.ui.Focus.Current() {
	case ui.FocusHelp:
		fullView = m.ui.Help.View()
	case ui.FocusConfirm:
		fullView = m.ui.ConfirmModal.View()
	}

	// Toast sits just above the footer
	if m.ui.Toast.Visible() {
		toastY := max(m.ui.Height-3, 0)
		fullView = placeOverlay(0, toastY, m.ui.Toast.View(m.ui.Width), fullView)
	}

	return fullView
}

// renderFooter renders the bottom footer with keybind hints
func (m Model) renderFooter() string {
	s := m.state.Session

	var hints []string
	if m.ui.Browser.FilterActive() {
		hints = append(hints, "enter apply", "esc clear")
	} else {
		hints = append(hints, "enter select", "tab type")
		if s.HasSelection(m.ui.Browser.ActiveType()) {
			hints = append(hints, "x remove")
		}
		if s.CanEvaluate() {
			hints = append(hints, "e check")
		}
		if m.state.InitState == InitComplete && s.CanSeed() {
			hints = append(hints, "S seed")
		}
		if s.Len() > 0 {
			hints = append(hints, "y copy", "R reset")
		}
		hints = append(hints, "/ filter", "? help", "q quit")
	}

	rendered := make([]string, len(hints))
	for i, h := range hints {
		rendered[i] = ui.DimStyle.Render(h)
	}
	return " " + strings.Join(rendered, ui.DimStyle.Render("  "))
}
