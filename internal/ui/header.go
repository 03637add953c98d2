package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// CatalogStatus is the readiness indicator shown in the header
type CatalogStatus int

const (
	CatalogChecking CatalogStatus = iota
	CatalogReady
	CatalogEmpty
	CatalogSeeding
)

func (s CatalogStatus) String() string {
	switch s {
	case CatalogChecking:
		return "Checking"
	case CatalogReady:
		return "Ready"
	case CatalogEmpty:
		return "Empty"
	case CatalogSeeding:
		return "Seeding"
	default:
		return "Unknown"
	}
}

// HeaderData contains the data displayed in the header
type HeaderData struct {
	ProgramName string
	BackendURL  string
	Region      string
}

// Header renders the top header bar
type Header struct {
	spinner spinner.Model
	data    *HeaderData
	status  CatalogStatus
	width   int
}

// NewHeader creates a new header component
func NewHeader() Header {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Header{
		spinner: s,
		status:  CatalogChecking,
	}
}

// SetData sets the header data
func (h *Header) SetData(data *HeaderData) {
	h.data = data
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus updates the catalog readiness indicator
func (h *Header) SetStatus(status CatalogStatus) {
	h.status = status
}

func (h *Header) Status() CatalogStatus {
	return h.status
}

// IsLoading returns whether the header spinner should tick
func (h *Header) IsLoading() bool {
	return h.status == CatalogChecking || h.status == CatalogSeeding
}

// Spinner returns the spinner model for updates
func (h *Header) Spinner() spinner.Model {
	return h.spinner
}

// SetSpinner updates the spinner model
func (h *Header) SetSpinner(s spinner.Model) {
	h.spinner = s
}

// View renders the header
func (h *Header) View() string {
	var topRow string
	if h.data != nil {
		program := LabelStyle.Render(orDefault(h.data.ProgramName, "partpick"))
		backend := fmt.Sprintf("%s %s",
			LabelStyle.Render("Backend:"),
			ValueStyle.Render(orDefault(h.data.BackendURL, "(none)")))
		region := fmt.Sprintf("%s %s",
			LabelStyle.Render("Region:"),
			ValueStyle.Render(orDefault(h.data.Region, "us")))

		topRow = lipgloss.JoinHorizontal(lipgloss.Center,
			program,
			DimStyle.Render("  │  "),
			backend,
			DimStyle.Render("  │  "),
			region,
		)
	}

	content := topRow
	if status := h.renderStatusRow(); status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, topRow, status)
	}

	return BoxStyle.Width(max(h.width-2, MinContentWidth)).Render(content)
}

func (h *Header) renderStatusRow() string {
	switch h.status {
	case CatalogChecking:
		return fmt.Sprintf("%s %s", h.spinner.View(), DimStyle.Render("Checking catalog..."))
	case CatalogSeeding:
		return fmt.Sprintf("%s %s", h.spinner.View(), DimStyle.Render("Seeding catalog..."))
	case CatalogEmpty:
		return WarningStyle.Render("Catalog is empty.") + " " + DimStyle.Render("Press S to seed sample parts.")
	case CatalogReady:
		return SuccessStyle.Render(IconSelected + " Catalog ready")
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
