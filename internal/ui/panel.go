package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Panel holds the size assigned to one region of the layout
type Panel struct {
	width  int
	height int
}

func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *Panel) Width() int  { return p.width }
func (p *Panel) Height() int { return p.height }

// LoadingPanel is a Panel whose content arrives asynchronously.
// The spinner only needs ticking while IsLoading is true.
type LoadingPanel struct {
	Panel
	spinner    spinner.Model
	loading    bool
	loadingMsg string
}

func newLoadingPanel() LoadingPanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return LoadingPanel{spinner: s}
}

func (l *LoadingPanel) Spinner() spinner.Model     { return l.spinner }
func (l *LoadingPanel) SetSpinner(s spinner.Model) { l.spinner = s }
func (l *LoadingPanel) IsLoading() bool            { return l.loading }

// SetLoading toggles the spinner; msg is shown beside it
func (l *LoadingPanel) SetLoading(loading bool, msg string) {
	l.loading = loading
	l.loadingMsg = msg
}

// overlay is a centered dialog layered over the main view
type overlay struct {
	visible bool
	width   int
	height  int
}

func (o *overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

func (o *overlay) Visible() bool { return o.visible }

func (o *overlay) render(title, content, footer string) string {
	dialog := DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content, footer))
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg),
	)
}
