// Package report renders a build as plain text for the clipboard and check mode.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rfhold/partpick/internal/build"
	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/pcpp"
)

const (
	typeWidth = 12
	nameWidth = 36
)

// Options controls optional report sections
type Options struct {
	// Region adds a PCPartPicker search link under each selected part when non-empty
	Region string
}

// Verdict is the one-line summary of the session's evaluation state
func Verdict(s *build.Session) string {
	switch s.Phase() {
	case build.PhaseEmpty:
		return "No parts selected"
	case build.PhasePartial:
		return "Not checked"
	case build.PhaseEvaluating:
		return "Checking"
	case build.PhaseValid:
		return "Compatible"
	case build.PhaseUnreachable:
		return "Backend unreachable"
	default:
		return "Issues found"
	}
}

// Write renders the session to w
func Write(w io.Writer, s *build.Session, opts Options) error {
	var b strings.Builder

	b.WriteString("Build summary\n")
	for _, t := range catalog.AllTypes() {
		c, ok := s.Selection(t)
		if !ok {
			fmt.Fprintf(&b, "%-*s %s\n", typeWidth, t, "(none)")
			continue
		}
		fmt.Fprintf(&b, "%-*s %-*s %10s\n", typeWidth, t, nameWidth, clip(c.Name, nameWidth), catalog.FormatPrice(c.Price))
		if opts.Region != "" {
			fmt.Fprintf(&b, "%-*s %s\n", typeWidth, "", pcpp.PartURL(opts.Region, c))
		}
	}
	fmt.Fprintf(&b, "%-*s %-*s %10s\n", typeWidth, "Total", nameWidth, "", catalog.FormatPrice(s.TotalPrice()))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Verdict: %s\n", Verdict(s))
	if r := s.Result(); r != nil {
		for _, issue := range r.Issues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
		if !r.IsUnreachable() {
			fmt.Fprintf(&b, "Estimated power: %s\n", catalog.FormatWatts(r.EstimatedPowerW))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
