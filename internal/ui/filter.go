package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FilterState narrows the catalog list by name or brand
type FilterState struct {
	active bool
	input  textinput.Model
}

// NewFilterState creates a new filter state
func NewFilterState() FilterState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 60
	ti.Width = 24
	ti.PromptStyle = CursorStyle
	ti.TextStyle = ValueStyle
	return FilterState{input: ti}
}

// Active returns whether the user is typing a filter
func (f *FilterState) Active() bool {
	return f.active
}

// Applied returns whether filter text is set
func (f *FilterState) Applied() bool {
	return f.input.Value() != ""
}

func (f *FilterState) ActiveOrApplied() bool {
	return f.active || f.Applied()
}

// Text returns the current filter text
func (f *FilterState) Text() string {
	return f.input.Value()
}

// Activate enters filter mode, resetting any previous filter text
func (f *FilterState) Activate() {
	f.active = true
	f.input.SetValue("")
	f.input.Focus()
}

// Deactivate exits filter mode but keeps filter text applied
func (f *FilterState) Deactivate() {
	f.active = false
	f.input.Blur()
}

// Reset exits filter mode and drops the filter text
func (f *FilterState) Reset() {
	f.Deactivate()
	f.input.SetValue("")
}

// Update handles key events while the filter is active.
// Escape clears the filter; enter keeps it applied.
func (f *FilterState) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !f.active {
		return nil, false
	}

	switch msg.Type {
	case tea.KeyEscape:
		f.Reset()
		return nil, true
	case tea.KeyEnter:
		f.Deactivate()
		return nil, true
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, true
}

// MatchesAny reports whether every whitespace-separated term of the filter
// appears in at least one of texts, ignoring case. "amd 7600" matches a part
// whose brand is AMD and whose name contains 7600.
func (f *FilterState) MatchesAny(texts ...string) bool {
	terms := strings.Fields(strings.ToLower(f.input.Value()))
	if len(terms) == 0 {
		return true
	}
	lowered := make([]string, len(texts))
	for i, text := range texts {
		lowered[i] = strings.ToLower(text)
	}
	for _, term := range terms {
		if !slices.ContainsFunc(lowered, func(text string) bool {
			return strings.Contains(text, term)
		}) {
			return false
		}
	}
	return true
}

// View returns the filter input view
func (f *FilterState) View() string {
	if f.active {
		return f.input.View()
	}
	if f.input.Value() != "" {
		return DimStyle.Render("/") + ValueStyle.Render(f.input.Value())
	}
	return ""
}

// RenderFilterBar renders the filter input with a match count, e.g. "/ryzen (2/5)"
func RenderFilterBar(filter *FilterState, matchCount, totalCount int) string {
	if !filter.ActiveOrApplied() {
		return ""
	}
	return filter.View() + DimStyle.Render(fmt.Sprintf(" (%d/%d)", matchCount, totalCount))
}
