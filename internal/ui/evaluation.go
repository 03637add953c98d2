package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/rfhold/partpick/internal/build"
	"github.com/rfhold/partpick/internal/catalog"
)

// EvaluationPanel shows the compatibility verdict for the current build
type EvaluationPanel struct {
	Panel
	phase   build.Phase
	result  *catalog.EvaluationResult
	spinner spinner.Model
}

func NewEvaluationPanel() *EvaluationPanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = VerdictPendingStyle
	return &EvaluationPanel{spinner: s}
}

// SetVerdict updates the panel from the session state
func (p *EvaluationPanel) SetVerdict(phase build.Phase, result *catalog.EvaluationResult) {
	p.phase = phase
	p.result = result
}

// Spinner returns the spinner model for tick updates
func (p *EvaluationPanel) Spinner() spinner.Model {
	return p.spinner
}

func (p *EvaluationPanel) SetSpinner(s spinner.Model) {
	p.spinner = s
}

func (p *EvaluationPanel) View() string {
	width := max(p.Width(), MinContentWidth)
	inner := width - 4

	lines := []string{LabelStyle.Render("Compatibility")}

	switch p.phase {
	case build.PhaseEmpty:
		lines = append(lines, DimStyle.Render("Select parts to begin."))
	case build.PhasePartial:
		lines = append(lines, DimStyle.Render("Press e to check compatibility."))
	case build.PhaseEvaluating:
		lines = append(lines, p.spinner.View()+" "+VerdictPendingStyle.Render("Checking compatibility..."))
	case build.PhaseUnreachable:
		lines = append(lines, VerdictInvalidStyle.Render(IconIssue+" "+catalog.UnreachableIssue))
	case build.PhaseValid:
		lines = append(lines, VerdictValidStyle.Render(IconSelected+" Compatible"))
		lines = append(lines, p.figures()...)
	case build.PhaseInvalid:
		lines = append(lines, VerdictInvalidStyle.Render(IconIssue+" Issues found"))
		if p.result != nil {
			for _, issue := range p.result.Issues {
				lines = append(lines, ErrorStyle.Render("  - ")+ValueStyle.Render(truncateEnd(issue, inner-4)))
			}
		}
		lines = append(lines, p.figures()...)
	}

	return BoxStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (p *EvaluationPanel) figures() []string {
	if p.result == nil {
		return nil
	}
	out := []string{
		DimStyle.Render("Estimated power: ") + ValueStyle.Render(catalog.FormatWatts(p.result.EstimatedPowerW)),
	}
	if p.result.TotalPrice > 0 {
		out = append(out, DimStyle.Render("Quoted total: ")+PriceStyle.Render(catalog.FormatPrice(p.result.TotalPrice)))
	}
	return out
}
