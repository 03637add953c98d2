package main

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/partpick/internal/build"
	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/pcpp"
	"github.com/rfhold/partpick/internal/report"
	"github.com/rfhold/partpick/internal/ui"
)

// Commands capture their inputs up front; they never touch the model.

var errNotPCPartPicker = errors.New("not a PCPartPicker link")

// checkCatalog returns a command that checks whether the catalog has parts
func (m *Model) checkCatalog() tea.Cmd {
	ctx := m.appCtx
	reader := m.deps.Catalog
	logger := m.deps.Logger
	return func() tea.Msg {
		return catalogReadinessMsg(build.CheckReadiness(ctx, reader, logger))
	}
}

// seedCatalog returns a command that seeds and then rechecks readiness
func (m *Model) seedCatalog() tea.Cmd {
	ctx := m.appCtx
	seeder := m.deps.Seeder
	reader := m.deps.Catalog
	logger := m.deps.Logger
	return func() tea.Msg {
		ready, err := build.SeedAndRecheck(ctx, seeder, reader, logger)
		return seedDoneMsg{ready: ready, err: err}
	}
}

// evaluateBuild returns a command that evaluates the ids snapshot taken at rev
func (m *Model) evaluateBuild(rev uint64, ids map[catalog.ComponentType]string) tea.Cmd {
	ctx := m.appCtx
	evaluator := m.deps.Evaluator
	logger := m.deps.Logger
	return func() tea.Msg {
		return evaluationDoneMsg{rev: rev, result: build.RunEvaluation(ctx, evaluator, ids, logger)}
	}
}

// fetchParts returns a command listing the parts of t for browser generation gen
func (m *Model) fetchParts(t catalog.ComponentType, gen uint64) tea.Cmd {
	return ui.FetchCmd(m.appCtx, m.deps.Catalog, t, gen)
}

// openPart returns a command that opens a PCPartPicker search for c
func (m *Model) openPart(c catalog.Component) tea.Cmd {
	open := m.deps.OpenURL
	if open == nil {
		return nil
	}
	url := pcpp.PartURL(m.ctx.Region, c)
	logger := m.deps.Logger
	return func() tea.Msg {
		if !pcpp.MatchURL(url) {
			return openURLErrMsg{url: url, err: errNotPCPartPicker}
		}
		if err := open(url); err != nil {
			logger.Debug("open url failed", "url", url, "error", err)
			return openURLErrMsg{url: url, err: err}
		}
		return nil
	}
}

// copyBuild returns a command that copies the plain-text build summary
func (m *Model) copyBuild() tea.Cmd {
	s := m.state.Session
	var b strings.Builder
	_ = report.Write(&b, s, report.Options{Region: m.ctx.Region})
	return ui.CopyBuildCmd(b.String(), s.Len(), m.deps.CopyText)
}
