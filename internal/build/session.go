package build

import (
	"github.com/rfhold/partpick/internal/catalog"
)

// Phase is the coarse state of a build session
type Phase int

const (
	PhaseEmpty       Phase = iota // no selections
	PhasePartial                  // selections exist, no verdict
	PhaseEvaluating               // evaluation in flight
	PhaseValid                    // last verdict is valid
	PhaseInvalid                  // last verdict reported issues
	PhaseUnreachable              // evaluation service could not be used
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "Empty"
	case PhasePartial:
		return "Partial"
	case PhaseEvaluating:
		return "Evaluating"
	case PhaseValid:
		return "Valid"
	case PhaseInvalid:
		return "Invalid"
	case PhaseUnreachable:
		return "Unreachable"
	default:
		return "Unknown"
	}
}

// Entry is one occupied slot of the selection map
type Entry struct {
	Type      catalog.ComponentType
	Component catalog.Component
}

// Session holds the build being assembled.
// It is pure state: network calls live in orchestration.go and are driven by the caller.
type Session struct {
	selections map[catalog.ComponentType]catalog.Component
	result     *catalog.EvaluationResult

	// revision increments on every selection mutation
	revision   uint64
	evaluating bool

	catalogReady bool
	seeding      bool
}

// NewSession creates an empty session. The catalog is assumed not ready until checked.
func NewSession() *Session {
	return &Session{
		selections: make(map[catalog.ComponentType]catalog.Component),
	}
}

// Select inserts or replaces the component for t and clears the last verdict
func (s *Session) Select(t catalog.ComponentType, c catalog.Component) {
	s.selections[t] = c
	s.invalidate()
}

// Remove deletes the selection for t if present and clears the last verdict
func (s *Session) Remove(t catalog.ComponentType) {
	delete(s.selections, t)
	s.invalidate()
}

// Reset clears every selection and the last verdict
func (s *Session) Reset() {
	clear(s.selections)
	s.invalidate()
}

func (s *Session) invalidate() {
	s.result = nil
	s.revision++
}

// Revision returns the current mutation counter
func (s *Session) Revision() uint64 {
	return s.revision
}

// TotalPrice sums the price of every selected component
func (s *Session) TotalPrice() float64 {
	var total float64
	for _, t := range catalog.AllTypes() {
		if c, ok := s.selections[t]; ok {
			total += c.Price
		}
	}
	return total
}

// Selection returns the component selected for t
func (s *Session) Selection(t catalog.ComponentType) (catalog.Component, bool) {
	c, ok := s.selections[t]
	return c, ok
}

func (s *Session) HasSelection(t catalog.ComponentType) bool {
	_, ok := s.selections[t]
	return ok
}

// Len returns the number of occupied slots
func (s *Session) Len() int {
	return len(s.selections)
}

// Entries returns the selections in canonical type order
func (s *Session) Entries() []Entry {
	entries := make([]Entry, 0, len(s.selections))
	for _, t := range catalog.AllTypes() {
		if c, ok := s.selections[t]; ok {
			entries = append(entries, Entry{Type: t, Component: c})
		}
	}
	return entries
}

// SelectedTypes reports which slots are occupied, for display badges
func (s *Session) SelectedTypes() map[catalog.ComponentType]bool {
	out := make(map[catalog.ComponentType]bool, len(s.selections))
	for t := range s.selections {
		out[t] = true
	}
	return out
}

// SelectionIDs returns the evaluate request payload: type to component id
func (s *Session) SelectionIDs() map[catalog.ComponentType]string {
	ids := make(map[catalog.ComponentType]string, len(s.selections))
	for t, c := range s.selections {
		ids[t] = c.ID
	}
	return ids
}

// Result returns the last verdict, or nil if none applies to the current selection
func (s *Session) Result() *catalog.EvaluationResult {
	return s.result
}

func (s *Session) Evaluating() bool {
	return s.evaluating
}

// CanEvaluate reports whether the evaluate action should be offered
func (s *Session) CanEvaluate() bool {
	return len(s.selections) > 0 && !s.evaluating
}

// BeginEvaluate marks the session as evaluating and snapshots the request.
// The returned revision must be passed back to FinishEvaluate.
func (s *Session) BeginEvaluate() (uint64, map[catalog.ComponentType]string) {
	s.evaluating = true
	return s.revision, s.SelectionIDs()
}

// FinishEvaluate stores result if the selection has not changed since rev.
// It reports whether the result was applied. The evaluating flag is always cleared.
func (s *Session) FinishEvaluate(rev uint64, result catalog.EvaluationResult) bool {
	s.evaluating = false
	if rev != s.revision {
		return false
	}
	s.result = &result
	return true
}

// Phase derives the coarse state from the selection and verdict
func (s *Session) Phase() Phase {
	switch {
	case s.evaluating:
		return PhaseEvaluating
	case s.result != nil && s.result.IsUnreachable():
		return PhaseUnreachable
	case s.result != nil && s.result.IsValid:
		return PhaseValid
	case s.result != nil:
		return PhaseInvalid
	case len(s.selections) == 0:
		return PhaseEmpty
	default:
		return PhasePartial
	}
}

// CatalogReady reports the result of the last readiness check
func (s *Session) CatalogReady() bool {
	return s.catalogReady
}

func (s *Session) SetCatalogReady(ready bool) {
	s.catalogReady = ready
}

func (s *Session) Seeding() bool {
	return s.seeding
}

// CanSeed reports whether the seed affordance should be offered
func (s *Session) CanSeed() bool {
	return !s.catalogReady && !s.seeding
}

// BeginSeed marks a seed request in flight
func (s *Session) BeginSeed() {
	s.seeding = true
}

// FinishSeed records the readiness observed after seeding
func (s *Session) FinishSeed(ready bool) {
	s.seeding = false
	s.catalogReady = ready
}
