package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/ui"
)

// AppContext holds the resolved startup settings
type AppContext struct {
	BackendURL string
	Region     string
	// StartType is the component type browsed first; empty means CPU
	StartType catalog.ComponentType
}

// Model is the main application model
type Model struct {
	ctx    AppContext
	appCtx context.Context
	deps   *Dependencies
	state  *AppState
	ui     *UIState

	quitting bool
}

func initialModel(appCtx context.Context, ctx AppContext, deps *Dependencies) Model {
	m := Model{
		ctx:    ctx,
		appCtx: appCtx,
		deps:   deps,
		state:  NewAppState(),
		ui:     NewUIState(),
	}

	m.ui.Header.SetData(&ui.HeaderData{
		ProgramName: "partpick",
		BackendURL:  ctx.BackendURL,
		Region:      ctx.Region,
	})
	m.syncHeader()
	m.syncBuild()
	return m
}

// Init checks catalog readiness and loads the first type concurrently
func (m Model) Init() tea.Cmd {
	start := m.ctx.StartType
	if !start.Valid() {
		start = catalog.TypeCPU
	}
	gen := m.ui.Browser.SetActiveType(start)
	m.ui.Build.SetActive(start)

	return tea.Batch(
		m.ui.Header.Spinner().Tick,
		m.ui.Browser.Spinner().Tick,
		m.checkCatalog(),
		m.fetchParts(start, gen),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	default:
		return m.handleMessage(msg)
	}
}
