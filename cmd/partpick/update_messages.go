package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/partpick/internal/ui"
)

// handleMessage routes all non-key, non-window messages to appropriate handlers.
func (m Model) handleMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if model, cmd, handled := m.handleCatalogMessages(msg); handled {
		return model, cmd
	}
	if model, cmd, handled := m.handleBuildMessages(msg); handled {
		return model, cmd
	}
	if model, cmd, handled := m.handleUIMessages(msg); handled {
		return model, cmd
	}
	return m, nil
}

func (m Model) handleCatalogMessages(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case catalogReadinessMsg:
		model, cmd := m.handleCatalogReadiness(msg)
		return model, cmd, true
	case seedDoneMsg:
		model, cmd := m.handleSeedDone(msg)
		return model, cmd, true
	case ui.CatalogListMsg:
		model, cmd := m.handleCatalogList(msg)
		return model, cmd, true
	}
	return m, nil, false
}

func (m Model) handleBuildMessages(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ui.PickMsg:
		model, cmd := m.handlePick(msg)
		return model, cmd, true
	case evaluationDoneMsg:
		model, cmd := m.handleEvaluationDone(msg)
		return model, cmd, true
	}
	return m, nil, false
}

func (m Model) handleUIMessages(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		model, cmd := m.handleSpinnerTick(msg)
		return model, cmd, true
	case ui.ToastHideMsg:
		m.ui.Toast.HandleHide(msg)
		return m, nil, true
	case ui.CopiedToClipboardMsg:
		model, cmd := m.handleCopiedToClipboard(msg)
		return model, cmd, true
	case openURLErrMsg:
		return m, m.ui.Toast.Show("Could not open a browser", ui.ToastWarning), true
	}
	return m, nil, false
}

func (m Model) handleCatalogReadiness(msg catalogReadinessMsg) (tea.Model, tea.Cmd) {
	m.state.Session.SetCatalogReady(bool(msg))
	if m.state.InitState == InitCheckingCatalog {
		m.transitionTo(InitComplete)
	}
	m.deps.Logger.Debug("catalog readiness", "ready", bool(msg))
	m.syncHeader()
	return m, nil
}

func (m Model) handleSeedDone(msg seedDoneMsg) (tea.Model, tea.Cmd) {
	m.state.Session.FinishSeed(msg.ready)
	m.syncHeader()

	var cmds []tea.Cmd
	if msg.err != nil {
		m.deps.Logger.Debug("seed failed", "error", msg.err, "ready", msg.ready)
		cmds = append(cmds, m.ui.Toast.Show("Seeding failed", ui.ToastWarning))
	}
	if msg.ready {
		// Reload the visible type so the new parts appear
		t := m.ui.Browser.ActiveType()
		gen := m.ui.Browser.SetActiveType(t)
		cmds = append(cmds, m.switchType(t, gen))
		if msg.err == nil {
			cmds = append(cmds, m.ui.Toast.Show("Catalog seeded", ui.ToastInfo))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleCatalogList(msg ui.CatalogListMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.deps.Logger.Debug("catalog list failed", "type", msg.Type, "gen", msg.Gen, "error", msg.Err)
	}
	if !m.ui.Browser.ApplyList(msg.Gen, msg.Items) {
		m.deps.Logger.Debug("discarding stale catalog list",
			"type", msg.Type,
			"gen", msg.Gen,
			"current", m.ui.Browser.Generation())
	}
	return m, nil
}

func (m Model) handlePick(msg ui.PickMsg) (tea.Model, tea.Cmd) {
	m.state.Session.Select(msg.Type, msg.Component)
	m.deps.Logger.Debug("part selected", "type", msg.Type, "id", msg.Component.ID)
	m.syncBuild()
	return m, nil
}

func (m Model) handleEvaluationDone(msg evaluationDoneMsg) (tea.Model, tea.Cmd) {
	applied := m.state.Session.FinishEvaluate(msg.rev, msg.result)
	if !applied {
		m.deps.Logger.Debug("discarding stale evaluation",
			"revision", msg.rev,
			"current", m.state.Session.Revision())
	}
	m.syncVerdict()
	return m, nil
}
