package ui

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/partpick/internal/backend"
	"github.com/rfhold/partpick/internal/catalog"
)

// CatalogListMsg carries the result of one catalog fetch.
// Gen is the browser generation the fetch was started for.
type CatalogListMsg struct {
	Gen   uint64
	Type  catalog.ComponentType
	Items []catalog.Component
	// Err is the fetch failure, if any; Items is empty in that case
	Err error
}

// PickMsg reports a chosen component together with the slot it fills.
// It is the only way a component reaches the build from the browser.
type PickMsg struct {
	Type      catalog.ComponentType
	Component catalog.Component
}

// CatalogBrowser lists the catalog parts of one active type at a time
// and reports picks upward. It holds no build state of its own.
type CatalogBrowser struct {
	LoadingPanel

	active catalog.ComponentType
	gen    uint64
	items  []catalog.Component
	cursor int

	// display-only inputs from the build
	selected    map[catalog.ComponentType]bool
	selectedIDs map[catalog.ComponentType]string

	filter      FilterState
	filteredIdx []int // indices into items matching the filter; nil when no filter
}

// NewCatalogBrowser creates a browser positioned on the first type.
// Call SetActiveType to start the first fetch.
func NewCatalogBrowser() *CatalogBrowser {
	return &CatalogBrowser{
		LoadingPanel: newLoadingPanel(),
		active:       catalog.AllTypes()[0],
		selected:     make(map[catalog.ComponentType]bool),
		selectedIDs:  make(map[catalog.ComponentType]string),
		filter:       NewFilterState(),
	}
}

// ActiveType returns the type being browsed
func (b *CatalogBrowser) ActiveType() catalog.ComponentType {
	return b.active
}

// Generation returns the tag of the most recent fetch
func (b *CatalogBrowser) Generation() uint64 {
	return b.gen
}

// SetActiveType switches the browsed type, discards the current list and
// returns the generation the caller must tag its fetch with
func (b *CatalogBrowser) SetActiveType(t catalog.ComponentType) uint64 {
	b.active = t
	b.items = nil
	b.cursor = 0
	b.filter.Reset()
	b.filteredIdx = nil
	b.gen++
	b.SetLoading(true, fmt.Sprintf("Loading %s...", t))
	return b.gen
}

// NextType activates the type after the current one, wrapping around
func (b *CatalogBrowser) NextType() (catalog.ComponentType, uint64) {
	return b.step(1)
}

// PrevType activates the type before the current one, wrapping around
func (b *CatalogBrowser) PrevType() (catalog.ComponentType, uint64) {
	return b.step(-1)
}

func (b *CatalogBrowser) step(delta int) (catalog.ComponentType, uint64) {
	types := catalog.AllTypes()
	idx := b.active.Index()
	if idx < 0 {
		idx = 0
	}
	next := types[(idx+delta+len(types))%len(types)]
	return next, b.SetActiveType(next)
}

// ApplyList installs items if gen is the current generation.
// Responses for an older generation are discarded and false is returned.
func (b *CatalogBrowser) ApplyList(gen uint64, items []catalog.Component) bool {
	if gen != b.gen {
		return false
	}
	b.items = items
	b.cursor = 0
	b.filteredIdx = nil
	b.SetLoading(false, "")
	return true
}

// Items returns the list currently displayed, before filtering
func (b *CatalogBrowser) Items() []catalog.Component {
	return b.items
}

// SetSelected updates which slots are filled and by which component ids
func (b *CatalogBrowser) SetSelected(ids map[catalog.ComponentType]string) {
	b.selected = make(map[catalog.ComponentType]bool, len(ids))
	b.selectedIDs = make(map[catalog.ComponentType]string, len(ids))
	for t, id := range ids {
		b.selected[t] = true
		b.selectedIDs[t] = id
	}
}

// SelectedItem returns the component under the cursor
func (b *CatalogBrowser) SelectedItem() (catalog.Component, bool) {
	if b.IsLoading() {
		return catalog.Component{}, false
	}
	idx := b.effectiveIndex(b.cursor)
	if idx < 0 || idx >= len(b.items) {
		return catalog.Component{}, false
	}
	return b.items[idx], true
}

// Pick builds the type-tagged pick event for the component under the cursor.
// It does not change any state.
func (b *CatalogBrowser) Pick() (PickMsg, bool) {
	c, ok := b.SelectedItem()
	if !ok {
		return PickMsg{}, false
	}
	return PickMsg{Type: b.active, Component: c}, true
}

// FilterActive reports whether the filter input owns the keyboard
func (b *CatalogBrowser) FilterActive() bool {
	return b.filter.Active()
}

// StartFilter focuses the filter input
func (b *CatalogBrowser) StartFilter() {
	b.filter.Activate()
	b.rebuildFilteredIndex()
}

// Update handles navigation and filter keys. A pick is reported through the returned command.
func (b *CatalogBrowser) Update(msg tea.KeyMsg) tea.Cmd {
	if b.filter.Active() {
		cmd, handled := b.filter.Update(msg)
		if handled {
			b.rebuildFilteredIndex()
			return cmd
		}
	}

	count := b.effectiveItemCount()
	switch {
	case key.Matches(msg, Keys.Filter):
		if len(b.items) > 0 {
			b.StartFilter()
		}
	case key.Matches(msg, Keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, Keys.Down):
		if b.cursor < count-1 {
			b.cursor++
		}
	case key.Matches(msg, Keys.Home):
		b.cursor = 0
	case key.Matches(msg, Keys.End):
		b.cursor = max(count-1, 0)
	case key.Matches(msg, Keys.Escape):
		if b.filter.Applied() {
			b.filter.Reset()
			b.rebuildFilteredIndex()
		}
	case key.Matches(msg, Keys.Pick):
		if pick, ok := b.Pick(); ok {
			return func() tea.Msg { return pick }
		}
	}
	return nil
}

func (b *CatalogBrowser) effectiveItemCount() int {
	if b.filteredIdx != nil {
		return len(b.filteredIdx)
	}
	return len(b.items)
}

func (b *CatalogBrowser) effectiveIndex(pos int) int {
	if b.filteredIdx != nil {
		if pos < 0 || pos >= len(b.filteredIdx) {
			return -1
		}
		return b.filteredIdx[pos]
	}
	return pos
}

func (b *CatalogBrowser) rebuildFilteredIndex() {
	if !b.filter.Applied() {
		b.filteredIdx = nil
		return
	}
	b.filteredIdx = make([]int, 0, len(b.items))
	for i, c := range b.items {
		if b.filter.MatchesAny(c.Name, c.Brand) {
			b.filteredIdx = append(b.filteredIdx, i)
		}
	}
	if b.cursor >= len(b.filteredIdx) {
		b.cursor = max(len(b.filteredIdx)-1, 0)
	}
}

// fetch lists the parts of type t, dropping records tagged with another type
func fetch(ctx context.Context, reader backend.CatalogReader, t catalog.ComponentType) ([]catalog.Component, error) {
	items, err := reader.ListComponents(ctx, t)
	if err != nil {
		return []catalog.Component{}, err
	}
	out := make([]catalog.Component, 0, len(items))
	for _, c := range items {
		if c.Type != "" && c.Type != t {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ListFor returns the parts of type t as a lazy sequence. Every range over
// the sequence performs a fresh fetch; a failed fetch yields nothing.
func ListFor(ctx context.Context, reader backend.CatalogReader, t catalog.ComponentType) iter.Seq[catalog.Component] {
	return func(yield func(catalog.Component) bool) {
		items, _ := fetch(ctx, reader, t)
		for _, c := range items {
			if !yield(c) {
				return
			}
		}
	}
}

// FetchCmd fetches the parts of type t for generation gen.
// The command only reads its arguments, so it is safe to run off the update loop.
func FetchCmd(ctx context.Context, reader backend.CatalogReader, t catalog.ComponentType, gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := fetch(ctx, reader, t)
		return CatalogListMsg{Gen: gen, Type: t, Items: items, Err: err}
	}
}

// View renders the type tabs and the card list
func (b *CatalogBrowser) View() string {
	tabs := b.renderTabs()
	bodyHeight := max(b.Height()-lipgloss.Height(tabs)-1, 1)

	var body string
	switch {
	case b.IsLoading():
		body = RenderCenteredLoading(b.Spinner(), b.loadingMsg, b.Width(), bodyHeight)
	case len(b.items) == 0:
		body = RenderCenteredMessage(fmt.Sprintf("No %s parts available", b.active), b.Width(), bodyHeight)
	default:
		body = b.renderCards(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, "", body)
}

func (b *CatalogBrowser) renderTabs() string {
	var tabs []string
	for _, t := range catalog.AllTypes() {
		label := t.String()
		if b.selected[t] {
			label = IconSelected + " " + label
		}
		switch {
		case t == b.active:
			tabs = append(tabs, ActiveTabStyle.Render(label))
		case b.selected[t]:
			tabs = append(tabs, SelectedTabStyle.Render(label))
		default:
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(max(b.Width(), MinContentWidth)).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (b *CatalogBrowser) renderCards(height int) string {
	count := b.effectiveItemCount()

	var footer string
	if b.filter.ActiveOrApplied() {
		footer = RenderFilterBar(&b.filter, count, len(b.items))
		height--
	}
	if count == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, DimStyle.Render("  No matches"), footer)
	}

	visible := max(height/cardHeight, 1)
	start, end := visibleWindow(b.cursor, count, visible)

	var cards []string
	for pos := start; pos < end; pos++ {
		idx := b.effectiveIndex(pos)
		if idx < 0 {
			continue
		}
		cards = append(cards, b.renderCard(b.items[idx], pos == b.cursor))
	}
	if hint := RenderScrollHint(start > 0, end < count, "  "); hint != "" {
		cards = append(cards, hint)
	}
	if footer != "" {
		cards = append(cards, footer)
	}
	return strings.Join(cards, "\n")
}

// renderCard draws one part: name and price, brand line, spec line
func (b *CatalogBrowser) renderCard(c catalog.Component, isCursor bool) string {
	width := max(b.Width(), MinContentWidth)

	cursor := "  "
	if isCursor {
		cursor = CursorStyle.Render("> ")
	}

	price := PriceStyle.Render(catalog.FormatPrice(c.Price))
	badge := ""
	if b.selectedIDs[b.active] != "" && b.selectedIDs[b.active] == c.ID {
		badge = " " + BadgeStyle.Render(IconSelected)
	}
	nameWidth := width - lipgloss.Width(cursor) - lipgloss.Width(price) - lipgloss.Width(badge) - 1
	name := truncateEnd(c.Name, nameWidth)
	if isCursor {
		name = ValueStyle.Bold(true).Render(name)
	} else {
		name = ValueStyle.Render(name)
	}
	top := cursor + padRight(name, nameWidth) + " " + price + badge

	brand := "    " + DimStyle.Render(fmt.Sprintf("%s %s %s", c.Brand, IconBullet, b.active))

	var specs []string
	for _, row := range catalog.SpecRowsAs(c, b.active) {
		specs = append(specs, LabelStyle.Render(row.Label+":")+" "+ValueStyle.Render(row.Display()))
	}
	specLine := "    " + strings.Join(specs, DimStyle.Render("  "))

	card := lipgloss.JoinVertical(lipgloss.Left, top, brand, truncateEnd(specLine, width), "")
	if isCursor {
		return SelectionStyle.Render(card)
	}
	return card
}
