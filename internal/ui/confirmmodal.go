package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmAction identifies what a confirmation dialog is guarding
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmReset
)

// ConfirmModal is a yes/no dialog guarding a destructive build action
type ConfirmModal struct {
	overlay

	title   string
	message string
	warning string // optional, shown in red
	action  ConfirmAction

	confirmLabel string
	cancelLabel  string
	confirmKey   string
	cancelKey    string
}

// NewConfirmModal creates a new confirmation modal
func NewConfirmModal() *ConfirmModal {
	return &ConfirmModal{
		cancelLabel:  "Cancel",
		confirmLabel: "Confirm",
		confirmKey:   "y",
		cancelKey:    "n",
	}
}

// Show displays the dialog for action
func (m *ConfirmModal) Show(action ConfirmAction, title, message, warning string) {
	m.action = action
	m.title = title
	m.message = message
	m.warning = warning
	m.visible = true
}

// Hide hides the dialog and forgets the pending action
func (m *ConfirmModal) Hide() {
	m.visible = false
	m.action = ConfirmNone
}

// Action returns the action awaiting confirmation
func (m *ConfirmModal) Action() ConfirmAction {
	return m.action
}

// SetLabels customizes the action labels
func (m *ConfirmModal) SetLabels(cancel, confirm string) {
	m.cancelLabel = cancel
	m.confirmLabel = confirm
}

// Update handles key events. On confirm it returns the guarded action.
func (m *ConfirmModal) Update(msg tea.KeyMsg) (action ConfirmAction, cancelled bool) {
	if !m.Visible() {
		return ConfirmNone, false
	}

	switch {
	case msg.String() == m.confirmKey:
		action = m.action
		m.Hide()
		return action, false
	case msg.String() == m.cancelKey, key.Matches(msg, Keys.Escape):
		m.Hide()
		return ConfirmNone, true
	}
	return ConfirmNone, false
}

// View renders the confirmation modal
func (m *ConfirmModal) View() string {
	title := DialogTitleStyle.Render(m.title)

	content := ValueStyle.Render(m.message)
	if m.warning != "" {
		content += "\n\n" + ErrorStyle.Render(m.warning)
	}

	footer := DimStyle.Render("\n" + m.confirmKey + " " + m.confirmLabel + "  " + m.cancelKey + "/esc " + m.cancelLabel)

	return m.render(title, content, footer)
}
