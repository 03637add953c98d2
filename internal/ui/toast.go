package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long the toast is visible
const ToastDuration = 4 * time.Second

// ToastLevel picks the toast colouring
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastWarning
)

// Toast is a temporary notification message
type Toast struct {
	message string
	level   ToastLevel
	visible bool
	// seq identifies the latest Show so an older hide tick cannot clear a newer toast
	seq int
}

// ToastMsg triggers showing a toast
type ToastMsg struct {
	Message string
	Level   ToastLevel
}

// ToastHideMsg hides the toast after timeout
type ToastHideMsg struct {
	Seq int
}

// NewToast creates a new toast component
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a message and schedules its removal
func (t *Toast) Show(message string, level ToastLevel) tea.Cmd {
	t.seq++
	t.message = message
	t.level = level
	t.visible = true

	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastHideMsg{Seq: seq}
	})
}

// HandleHide hides the toast if msg belongs to the message currently shown
func (t *Toast) HandleHide(msg ToastHideMsg) {
	if msg.Seq != t.seq {
		return
	}
	t.Hide()
}

// Hide hides the toast
func (t *Toast) Hide() {
	t.visible = false
	t.message = ""
}

func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the text currently shown
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	fg := lipgloss.Color("252")
	if t.level == ToastWarning {
		fg = ColorWarning
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(fg).
		Padding(0, 2).
		Bold(true)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(t.message))
}
