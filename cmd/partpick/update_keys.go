package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/ui"
)

// handleKeyPress handles all keyboard events
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.Focus.Current() {
	case ui.FocusConfirm:
		return m.handleConfirmKey(msg)
	case ui.FocusHelp:
		return m.handleHelpKey(msg)
	case ui.FocusFilter:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		cmd := m.ui.Browser.Update(msg)
		m.syncFilterFocus()
		return m, cmd
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, ui.Keys.Help):
		m.showHelp()
		return m, nil

	case key.Matches(msg, ui.Keys.NextType):
		t, gen := m.ui.Browser.NextType()
		return m, m.switchType(t, gen)

	case key.Matches(msg, ui.Keys.PrevType):
		t, gen := m.ui.Browser.PrevType()
		return m, m.switchType(t, gen)

	case key.Matches(msg, ui.Keys.Remove):
		t := m.ui.Browser.ActiveType()
		if m.state.Session.HasSelection(t) {
			m.state.Session.Remove(t)
			m.deps.Logger.Debug("selection removed", "type", t)
			m.syncBuild()
		}
		return m, nil

	case key.Matches(msg, ui.Keys.Reset):
		if m.state.Session.Len() > 0 {
			m.showResetConfirm()
		}
		return m, nil

	case key.Matches(msg, ui.Keys.Evaluate):
		return m.startEvaluation()

	case key.Matches(msg, ui.Keys.Seed):
		return m.startSeed()

	case key.Matches(msg, ui.Keys.OpenPart):
		if c, ok := m.ui.Browser.SelectedItem(); ok {
			return m, m.openPart(c)
		}
		return m, nil

	case key.Matches(msg, ui.Keys.CopyBuild):
		if m.state.Session.Len() == 0 {
			return m, m.ui.Toast.Show("Nothing to copy", ui.ToastInfo)
		}
		return m, m.copyBuild()
	}

	// Navigation, filter and pick belong to the browser
	cmd := m.ui.Browser.Update(msg)
	m.syncFilterFocus()
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cancelled := m.ui.ConfirmModal.Update(msg)
	switch {
	case action == ui.ConfirmReset:
		m.hideConfirm()
		m.state.Session.Reset()
		m.deps.Logger.Debug("build reset")
		m.syncBuild()
		return m, m.ui.Toast.Show("Build cleared", ui.ToastInfo)
	case cancelled:
		m.hideConfirm()
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.Help), key.Matches(msg, ui.Keys.Escape), key.Matches(msg, ui.Keys.Quit):
		m.hideHelp()
	default:
		m.ui.Help.Update(msg)
	}
	return m, nil
}

// switchType starts loading t for the browser generation gen
func (m *Model) switchType(t catalog.ComponentType, gen uint64) tea.Cmd {
	m.ui.Build.SetActive(t)
	m.syncFilterFocus()
	m.deps.Logger.Debug("browsing type", "type", t, "gen", gen)
	return tea.Batch(m.fetchParts(t, gen), m.ui.Browser.Spinner().Tick)
}

// startEvaluation snapshots the selection and sends it for evaluation.
// Ignored while the build is empty or a request is in flight.
func (m Model) startEvaluation() (tea.Model, tea.Cmd) {
	s := m.state.Session
	if !s.CanEvaluate() {
		return m, nil
	}
	rev, ids := s.BeginEvaluate()
	m.deps.Logger.Debug("evaluation started", "revision", rev, "parts", len(ids))
	m.syncVerdict()
	return m, tea.Batch(m.evaluateBuild(rev, ids), m.ui.Evaluation.Spinner().Tick)
}

// startSeed is only offered while the catalog is not ready
func (m Model) startSeed() (tea.Model, tea.Cmd) {
	s := m.state.Session
	if m.state.InitState != InitComplete || !s.CanSeed() {
		return m, nil
	}
	s.BeginSeed()
	m.deps.Logger.Debug("seeding catalog")
	m.syncHeader()
	return m, tea.Batch(m.seedCatalog(), m.ui.Header.Spinner().Tick)
}
