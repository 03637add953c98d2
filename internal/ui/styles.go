package ui

import "github.com/charmbracelet/lipgloss"

// Color palette (Tokyo Night)
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#bb9af7")
	ColorText      = lipgloss.Color("#c0caf5")
	ColorDim       = lipgloss.Color("#565f89")
	ColorError     = lipgloss.Color("#f7768e")
	ColorBg        = lipgloss.Color("#1a1b26")
	ColorSelection = lipgloss.Color("#283457") // cursor card background
	ColorSuccess   = lipgloss.Color("#9ece6a") // green
	ColorWarning   = lipgloss.Color("#e0af68") // yellow/orange
	ColorAccent    = lipgloss.Color("#7dcfff") // cyan
	ColorPrice     = lipgloss.Color("#9ece6a")
)

// Styles
var (
	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	PriceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrice)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	// FocusedBoxStyle marks the panel that owns the cursor
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginBottom(1)

	// Type tab styles
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBg).
			Background(ColorPrimary).
			Padding(0, 1)

	SelectedTabStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Padding(0, 1)

	// Verdict styles
	VerdictValidStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	VerdictInvalidStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorError)

	VerdictPendingStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	// Scroll indicator styles - bright cyan for high visibility
	ScrollIndicatorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	// Cursor and selection styles
	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SelectionStyle = lipgloss.NewStyle().
			Background(ColorSelection)

	// BadgeStyle marks the card already chosen for its slot
	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)
)

// Status icons
const (
	IconSelected = "✓"
	IconIssue    = "✗"
	IconEmpty    = "○"
	IconBullet   = "•"
)

// Layout constants for UI components
const (
	// Minimum usable content area
	MinContentWidth  = 20
	MinContentHeight = 5

	// BuildPanelWidth is the fixed width of the right-hand column
	BuildPanelWidth = 44

	// cardHeight is the number of lines one catalog card occupies, including its gap
	cardHeight = 4
)
