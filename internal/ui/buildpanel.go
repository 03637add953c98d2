package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/partpick/internal/catalog"
)

// BuildRow is one slot of the build as displayed
type BuildRow struct {
	Type      catalog.ComponentType
	Component *catalog.Component // nil when the slot is empty
}

// BuildPanel renders the "Your Build" table: one row per slot plus the total
type BuildPanel struct {
	Panel
	rows   []BuildRow
	total  float64
	active catalog.ComponentType
}

func NewBuildPanel() *BuildPanel {
	return &BuildPanel{}
}

// SetBuild replaces the displayed rows and total. Rows are shown for every
// type in canonical order; missing types render as empty slots.
func (p *BuildPanel) SetBuild(selected map[catalog.ComponentType]catalog.Component, total float64) {
	p.rows = p.rows[:0]
	for _, t := range catalog.AllTypes() {
		row := BuildRow{Type: t}
		if c, ok := selected[t]; ok {
			row.Component = &c
		}
		p.rows = append(p.rows, row)
	}
	p.total = total
}

// SetActive highlights the slot being browsed
func (p *BuildPanel) SetActive(t catalog.ComponentType) {
	p.active = t
}

func (p *BuildPanel) View() string {
	width := max(p.Width(), MinContentWidth)
	inner := width - 4 // border and padding

	lines := []string{LabelStyle.Render("Your Build")}
	typeWidth := 0
	for _, t := range catalog.AllTypes() {
		typeWidth = max(typeWidth, lipgloss.Width(t.String()))
	}

	for _, row := range p.rows {
		marker := "  "
		if row.Type == p.active {
			marker = CursorStyle.Render("› ")
		}
		label := DimStyle.Render(padRight(row.Type.String(), typeWidth))

		if row.Component == nil {
			lines = append(lines, marker+label+"  "+DimStyle.Render(IconEmpty+" none"))
			continue
		}

		price := PriceStyle.Render(catalog.FormatPrice(row.Component.Price))
		nameWidth := inner - lipgloss.Width(marker) - typeWidth - 2 - lipgloss.Width(price) - 1
		name := padRight(truncateEnd(row.Component.Name, nameWidth), nameWidth)
		lines = append(lines, marker+label+"  "+ValueStyle.Render(name)+" "+price)
	}

	lines = append(lines,
		DimStyle.Render(strings.Repeat("─", max(inner, 1))),
		padRight(LabelStyle.Render("Total"), inner-lipgloss.Width(catalog.FormatPrice(p.total)))+
			PriceStyle.Render(catalog.FormatPrice(p.total)),
	)

	return BoxStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
