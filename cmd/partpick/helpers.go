package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/ui"
)

// transitionTo moves the init state machine to a new state with logging
func (m *Model) transitionTo(newState InitState) {
	oldState := m.state.InitState
	m.state.InitState = newState
	m.deps.Logger.Debug("init state transition",
		"from", oldState.String(),
		"to", newState.String())
}

// Session to UI projection

// syncBuild pushes the selection map to every view that shows it
func (m *Model) syncBuild() {
	s := m.state.Session
	selected := make(map[catalog.ComponentType]catalog.Component, s.Len())
	for _, e := range s.Entries() {
		selected[e.Type] = e.Component
	}
	m.ui.Build.SetBuild(selected, s.TotalPrice())
	m.ui.Browser.SetSelected(s.SelectionIDs())
	m.syncVerdict()
}

func (m *Model) syncVerdict() {
	s := m.state.Session
	m.ui.Evaluation.SetVerdict(s.Phase(), s.Result())
}

func (m *Model) syncHeader() {
	s := m.state.Session
	switch {
	case m.state.InitState == InitCheckingCatalog:
		m.ui.Header.SetStatus(ui.CatalogChecking)
	case s.Seeding():
		m.ui.Header.SetStatus(ui.CatalogSeeding)
	case s.CatalogReady():
		m.ui.Header.SetStatus(ui.CatalogReady)
	default:
		m.ui.Header.SetStatus(ui.CatalogEmpty)
	}
}

// Focus management helpers

func (m *Model) showHelp() {
	m.ui.Help.GotoTop()
	m.ui.Focus.Push(ui.FocusHelp)
}

func (m *Model) hideHelp() {
	m.ui.Focus.Remove(ui.FocusHelp)
}

func (m *Model) showResetConfirm() {
	m.ui.ConfirmModal.SetLabels("Keep", "Reset")
	m.ui.ConfirmModal.Show(ui.ConfirmReset,
		"Reset Build",
		"Remove every selected part?",
		"The current verdict will be discarded.")
	m.ui.Focus.Push(ui.FocusConfirm)
}

func (m *Model) hideConfirm() {
	m.ui.ConfirmModal.Hide()
	m.ui.Focus.Remove(ui.FocusConfirm)
}

// syncFilterFocus keeps the focus stack in step with the browser filter input
func (m *Model) syncFilterFocus() {
	if m.ui.Browser.FilterActive() {
		m.ui.Focus.Push(ui.FocusFilter)
	} else {
		m.ui.Focus.Remove(ui.FocusFilter)
	}
}

// placeOverlay places an overlay string at the specified x,y position on the background
func placeOverlay(x, y int, overlay, background string) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}

		prefix := lipgloss.NewStyle().MaxWidth(max(x, 0)).Render(bgLines[bgIdx])
		if w := lipgloss.Width(prefix); w < x {
			prefix += strings.Repeat(" ", x-w)
		}
		bgLines[bgIdx] = prefix + overlayLine
	}

	return strings.Join(bgLines, "\n")
}
