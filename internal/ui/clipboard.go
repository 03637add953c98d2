package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// CopiedToClipboardMsg is sent after the build summary is copied
type CopiedToClipboardMsg struct {
	Success bool
	Parts   int // number of selected parts in the copied summary
}

// CopyBuildCmd returns a command that copies text using write.
// A nil write uses the system clipboard.
func CopyBuildCmd(text string, parts int, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			if clipboard.Unsupported {
				return CopiedToClipboardMsg{Success: false, Parts: parts}
			}
			write = clipboard.WriteAll
		}
		return CopiedToClipboardMsg{Success: write(text) == nil, Parts: parts}
	}
}
