package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpSections = []string{"Browse", "Build", "Extras", "General"}

// HelpDialog lists every key binding grouped the way KeyMap.FullHelp groups them
type HelpDialog struct {
	overlay
	groups   [][]key.Binding
	viewport viewport.Model
	sized    bool
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{groups: Keys.FullHelp()}
}

// SetSize fits the scrollable area to the screen
func (h *HelpDialog) SetSize(width, height int) {
	h.overlay.SetSize(width, height)

	content := h.content()
	lines := strings.Count(content, "\n") + 1
	// dialog border, padding, title and both scroll hints
	const chrome = 11
	vpHeight := min(lines, max(height-chrome, 3))

	if !h.sized {
		h.viewport = viewport.New(44, vpHeight)
		h.sized = true
	} else {
		h.viewport.Height = vpHeight
	}
	h.viewport.SetContent(content)
}

func (h *HelpDialog) content() string {
	keyWidth := 0
	for _, group := range h.groups {
		for _, b := range group {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	var lines []string
	for i, group := range h.groups {
		if i > 0 {
			lines = append(lines, "")
		}
		if i < len(helpSections) {
			lines = append(lines, LabelStyle.Render(helpSections[i]))
		}
		for _, b := range group {
			hb := b.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s",
				ValueStyle.Render(fmt.Sprintf("%*s", keyWidth, hb.Key)),
				DimStyle.Render(capitalize(hb.Desc))))
		}
	}
	return strings.Join(lines, "\n")
}

// Update scrolls the dialog
func (h *HelpDialog) Update(msg tea.KeyMsg) {
	if h.sized {
		h.viewport, _ = h.viewport.Update(msg)
	}
}

func (h *HelpDialog) GotoTop() {
	if h.sized {
		h.viewport.GotoTop()
	}
}

func (h *HelpDialog) View() string {
	title := DialogTitleStyle.Render("Keyboard Shortcuts")
	if !h.sized {
		return h.render(title, h.content(), "")
	}

	body := h.viewport.View()
	if h.viewport.TotalLineCount() > h.viewport.Height {
		body = strings.Join([]string{
			RenderScrollHint(!h.viewport.AtTop(), false, "  "),
			body,
			RenderScrollHint(false, !h.viewport.AtBottom(), "  "),
		}, "\n")
	}
	return h.render(title, body, "")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
