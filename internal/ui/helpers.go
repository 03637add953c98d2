package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// truncateEnd shortens s to maxWidth cells, ending with "..."
func truncateEnd(s string, maxWidth int) string {
	if maxWidth <= 3 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// padRight pads s with spaces to width cells
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderCenteredLoading renders a loading state with spinner centered in the given dimensions
func RenderCenteredLoading(spin spinner.Model, msg string, width, height int) string {
	if msg == "" {
		msg = "Loading..."
	}
	content := fmt.Sprintf("%s %s", spin.View(), msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderCenteredMessage renders a dim message centered in the given dimensions
func RenderCenteredMessage(msg string, width, height int) string {
	content := DimStyle.Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderScrollHint renders a text-based scroll hint such as "▼ more below"
func RenderScrollHint(canScrollUp, canScrollDown bool, padding string) string {
	switch {
	case canScrollUp && canScrollDown:
		return ScrollIndicatorStyle.Render(padding + "▲▼ more")
	case canScrollUp:
		return ScrollIndicatorStyle.Render(padding + "▲ more above")
	case canScrollDown:
		return ScrollIndicatorStyle.Render(padding + "▼ more below")
	}
	return ""
}

// visibleWindow returns the [start, end) range of count items that keeps
// cursor roughly centered in a window of size visible
func visibleWindow(cursor, count, visible int) (start, end int) {
	if visible <= 0 || count <= visible {
		return 0, count
	}
	start = max(cursor-visible/2, 0)
	end = start + visible
	if end > count {
		end = count
		start = end - visible
	}
	return start, end
}
