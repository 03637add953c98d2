package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/partpick/internal/backend"
	"github.com/rfhold/partpick/internal/build"
	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/ui"
)

var testParts = []catalog.Component{
	{ID: "cpu-1", Name: "Ryzen 5 7600", Brand: "AMD", Type: catalog.TypeCPU, Price: 200},
	{ID: "cpu-2", Name: "Core i5-14600K", Brand: "Intel", Type: catalog.TypeCPU, Price: 290},
	{ID: "mb-1", Name: "B650 Tomahawk", Brand: "MSI", Type: catalog.TypeMotherboard, Price: 500},
}

// newTestDependencies creates a Dependencies struct with all fakes for testing.
func newTestDependencies() (*Dependencies, *backend.FakeCatalog, *backend.FakeEvaluator) {
	fc := &backend.FakeCatalog{Components: append([]catalog.Component(nil), testParts...)}
	fe := &backend.FakeEvaluator{Result: &catalog.EvaluationResult{
		IsValid:         true,
		Issues:          []string{},
		EstimatedPowerW: 450,
		TotalPrice:      700,
	}}
	deps := &Dependencies{
		Catalog:   fc,
		Seeder:    fc,
		Evaluator: fe,
		OpenURL:   func(string) error { return nil },
		CopyText:  func(string) error { return nil },
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return deps, fc, fe
}

func newTestModel(t *testing.T) (Model, *backend.FakeCatalog, *backend.FakeEvaluator) {
	t.Helper()
	deps, fc, fe := newTestDependencies()
	m := initialModel(context.Background(), AppContext{BackendURL: "http://test", Region: "us"}, deps)
	return m, fc, fe
}

// collectMsgs runs cmd and any batched children, returning their messages.
// Only use it for commands that complete immediately.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed delivers every message of interest back into the model.
// Spinner ticks are dropped so follow-up tick commands never run.
func feed(m Model, msgs []tea.Msg) Model {
	for _, msg := range msgs {
		switch msg.(type) {
		case catalogReadinessMsg, seedDoneMsg, evaluationDoneMsg, ui.CatalogListMsg, ui.PickMsg, openURLErrMsg, ui.CopiedToClipboardMsg:
			next, _ := m.Update(msg)
			m = next.(Model)
		}
	}
	return m
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// started returns a model after Init has settled against the fakes
func started(t *testing.T) (Model, *backend.FakeCatalog, *backend.FakeEvaluator) {
	t.Helper()
	m, fc, fe := newTestModel(t)
	m = feed(m, collectMsgs(m.Init()))
	return m, fc, fe
}

func TestInitialModelStartsCheckingCatalog(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.state.InitState != InitCheckingCatalog {
		t.Errorf("expected InitState=%v, got %v", InitCheckingCatalog, m.state.InitState)
	}
	if m.state.Session.CatalogReady() {
		t.Error("catalog must not be ready before the first readiness check")
	}
	if m.ui.Header.Status() != ui.CatalogChecking {
		t.Errorf("expected header status Checking, got %v", m.ui.Header.Status())
	}
}

func TestInitChecksAndLoadsFirstType(t *testing.T) {
	m, fc, _ := started(t)

	if m.state.InitState != InitComplete {
		t.Errorf("expected InitComplete, got %v", m.state.InitState)
	}
	if !m.state.Session.CatalogReady() {
		t.Error("catalog with parts should be ready")
	}
	if m.ui.Header.Status() != ui.CatalogReady {
		t.Errorf("expected header status Ready, got %v", m.ui.Header.Status())
	}
	if m.ui.Browser.ActiveType() != catalog.TypeCPU {
		t.Errorf("expected CPU first, got %v", m.ui.Browser.ActiveType())
	}
	if got := len(m.ui.Browser.Items()); got != 2 {
		t.Errorf("expected 2 CPUs listed, got %d", got)
	}

	calls := fc.ListCalls()
	var checked, listedCPU bool
	for _, c := range calls {
		if c == backend.AllComponents {
			checked = true
		}
		if c == catalog.TypeCPU {
			listedCPU = true
		}
	}
	if !checked || !listedCPU {
		t.Errorf("expected a readiness check and a CPU list, got %v", calls)
	}
}

func TestInitHonoursStartType(t *testing.T) {
	deps, _, _ := newTestDependencies()
	m := initialModel(context.Background(), AppContext{StartType: catalog.TypeMotherboard}, deps)
	m = feed(m, collectMsgs(m.Init()))

	if m.ui.Browser.ActiveType() != catalog.TypeMotherboard {
		t.Errorf("expected Motherboard, got %v", m.ui.Browser.ActiveType())
	}
}

func TestPickSelectsIntoSession(t *testing.T) {
	m, _, _ := started(t)

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	c, ok := m.state.Session.Selection(catalog.TypeCPU)
	if !ok || c.ID != "cpu-1" {
		t.Fatalf("expected cpu-1 selected, got %+v ok=%v", c, ok)
	}
	if m.state.Session.TotalPrice() != 200 {
		t.Errorf("TotalPrice = %v, want 200", m.state.Session.TotalPrice())
	}
	if !strings.Contains(m.ui.Build.View(), "Ryzen 5 7600") {
		t.Error("build panel should show the picked part")
	}
}

func TestPickReplacesSameType(t *testing.T) {
	m, _, _ := started(t)

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))
	m, _ = press(m, "down")
	m, cmd = press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	if m.state.Session.Len() != 1 {
		t.Fatalf("expected one selection, got %d", m.state.Session.Len())
	}
	c, _ := m.state.Session.Selection(catalog.TypeCPU)
	if c.ID != "cpu-2" {
		t.Errorf("expected cpu-2 to replace cpu-1, got %s", c.ID)
	}
}

func TestSwitchTypeThenPick(t *testing.T) {
	m, _, _ := started(t)

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	m, cmd = press(m, "tab")
	if m.ui.Browser.ActiveType() != catalog.TypeMotherboard {
		t.Fatalf("expected Motherboard after tab, got %v", m.ui.Browser.ActiveType())
	}
	if !m.ui.Browser.IsLoading() {
		t.Error("browser should be loading after a type switch")
	}
	m = feed(m, collectMsgs(cmd))

	m, cmd = press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	if m.state.Session.TotalPrice() != 700 {
		t.Errorf("TotalPrice = %v, want 700", m.state.Session.TotalPrice())
	}

	m, _ = press(m, "x")
	if m.state.Session.HasSelection(catalog.TypeMotherboard) {
		t.Error("x should remove the active type's selection")
	}
	if m.state.Session.TotalPrice() != 200 {
		t.Errorf("TotalPrice after remove = %v, want 200", m.state.Session.TotalPrice())
	}
}

func TestStaleCatalogListIsDiscarded(t *testing.T) {
	m, _, _ := started(t)

	// Switch away and back; the first Motherboard fetch is now stale
	m, staleCmd := press(m, "tab")
	m, freshCmd := press(m, "shift+tab")

	m = feed(m, collectMsgs(freshCmd))
	m = feed(m, collectMsgs(staleCmd))

	if m.ui.Browser.ActiveType() != catalog.TypeCPU {
		t.Fatalf("expected CPU, got %v", m.ui.Browser.ActiveType())
	}
	if got := len(m.ui.Browser.Items()); got != 2 {
		t.Errorf("expected the 2 CPUs to stay listed, got %d", got)
	}
	for _, c := range m.ui.Browser.Items() {
		if c.Type != catalog.TypeCPU {
			t.Errorf("stale %s item %q reached the CPU list", c.Type, c.ID)
		}
	}
}

func TestEvaluateStoresVerdict(t *testing.T) {
	m, _, fe := started(t)

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	m, cmd = press(m, "e")
	if !m.state.Session.Evaluating() {
		t.Fatal("expected evaluating after e")
	}
	if m.state.Session.Phase() != build.PhaseEvaluating {
		t.Errorf("expected PhaseEvaluating, got %v", m.state.Session.Phase())
	}
	m = feed(m, collectMsgs(cmd))

	if m.state.Session.Evaluating() {
		t.Error("evaluating flag should clear")
	}
	if m.state.Session.Phase() != build.PhaseValid {
		t.Errorf("expected PhaseValid, got %v", m.state.Session.Phase())
	}

	calls := fe.EvaluateCalls()
	if len(calls) != 1 || calls[0][catalog.TypeCPU] != "cpu-1" {
		t.Errorf("expected one evaluate with cpu-1, got %v", calls)
	}
	if !strings.Contains(m.ui.Evaluation.View(), "450 W") {
		t.Error("evaluation panel should show estimated power")
	}
}

func TestEvaluateIgnoredWhenEmpty(t *testing.T) {
	m, _, fe := started(t)

	m, cmd := press(m, "e")
	if cmd != nil {
		t.Error("e with no selections should do nothing")
	}
	if m.state.Session.Evaluating() {
		t.Error("should not be evaluating")
	}
	if len(fe.EvaluateCalls()) != 0 {
		t.Error("evaluator should not be called")
	}
}

func TestEvaluateUnreachable(t *testing.T) {
	m, _, fe := started(t)
	fe.Err = errors.New("connection refused")

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))
	m, cmd = press(m, "e")
	m = feed(m, collectMsgs(cmd))

	if m.state.Session.Phase() != build.PhaseUnreachable {
		t.Errorf("expected PhaseUnreachable, got %v", m.state.Session.Phase())
	}
	if !strings.Contains(m.ui.Evaluation.View(), catalog.UnreachableIssue) {
		t.Error("panel should show the unreachable issue")
	}
}

func TestEvaluationResultAfterEditIsDiscarded(t *testing.T) {
	m, _, _ := started(t)

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	m, evalCmd := press(m, "e")
	// Change the build while the request is in flight
	m, _ = press(m, "x")

	m = feed(m, collectMsgs(evalCmd))

	if m.state.Session.Evaluating() {
		t.Error("evaluating flag should clear even for a stale result")
	}
	if m.state.Session.Result() != nil {
		t.Error("stale result should not be stored")
	}
}

func TestResetAsksForConfirmation(t *testing.T) {
	m, _, _ := started(t)
	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	m, _ = press(m, "R")
	if m.ui.Focus.Current() != ui.FocusConfirm {
		t.Fatalf("expected confirm focus, got %v", m.ui.Focus.Current())
	}

	m, _ = press(m, "n")
	if m.state.Session.Len() != 1 {
		t.Error("cancel must keep the build")
	}
	if m.ui.Focus.Current() != ui.FocusMain {
		t.Errorf("expected main focus after cancel, got %v", m.ui.Focus.Current())
	}

	m, _ = press(m, "R")
	m, _ = press(m, "y")
	if m.state.Session.Len() != 0 {
		t.Error("confirm should clear the build")
	}
	if m.state.Session.TotalPrice() != 0 {
		t.Errorf("TotalPrice after reset = %v", m.state.Session.TotalPrice())
	}
}

func TestResetWithEmptyBuildDoesNothing(t *testing.T) {
	m, _, _ := started(t)
	m, _ = press(m, "R")
	if m.ui.Focus.Current() != ui.FocusMain {
		t.Errorf("expected no dialog, focus is %v", m.ui.Focus.Current())
	}
}

func TestEmptyCatalogSeedFlow(t *testing.T) {
	deps, fc, _ := newTestDependencies()
	fc.Components = nil
	fc.SeedComponents = append([]catalog.Component(nil), testParts...)
	m := initialModel(context.Background(), AppContext{}, deps)
	m = feed(m, collectMsgs(m.Init()))

	if m.state.Session.CatalogReady() {
		t.Fatal("empty catalog should not be ready")
	}
	if m.ui.Header.Status() != ui.CatalogEmpty {
		t.Errorf("expected header Empty, got %v", m.ui.Header.Status())
	}
	if !strings.Contains(m.ui.Browser.View(), "No CPU parts available") {
		t.Error("browser should show the empty message")
	}

	m, cmd := press(m, "S")
	if !m.state.Session.Seeding() {
		t.Fatal("expected seeding after S")
	}
	if m.ui.Header.Status() != ui.CatalogSeeding {
		t.Errorf("expected header Seeding, got %v", m.ui.Header.Status())
	}

	// A second S while seeding is ignored
	m, again := press(m, "S")
	if again != nil {
		t.Error("S while seeding should be ignored")
	}

	msgs := collectMsgs(cmd)
	var done seedDoneMsg
	for _, msg := range msgs {
		if d, ok := msg.(seedDoneMsg); ok {
			done = d
		}
	}
	next, refetch := m.Update(done)
	m = next.(Model)

	if fc.SeedCalls() != 1 {
		t.Errorf("expected one seed call, got %d", fc.SeedCalls())
	}
	if !m.state.Session.CatalogReady() {
		t.Error("catalog should be ready after seeding")
	}
	if m.ui.Header.Status() != ui.CatalogReady {
		t.Errorf("expected header Ready, got %v", m.ui.Header.Status())
	}
	if !m.ui.Browser.IsLoading() || refetch == nil {
		t.Error("the active type should reload after seeding")
	}
}

func TestSeedCompletionWhileFilteringReturnsFocus(t *testing.T) {
	deps, fc, _ := newTestDependencies()
	fc.Components = nil
	fc.SeedComponents = append([]catalog.Component(nil), testParts...)
	m := initialModel(context.Background(), AppContext{}, deps)
	m = feed(m, collectMsgs(m.Init()))

	m, _ = press(m, "S")
	// parts can show up before the seed round trip finishes
	m = feed(m, []tea.Msg{ui.CatalogListMsg{
		Gen:   m.ui.Browser.Generation(),
		Type:  catalog.TypeCPU,
		Items: testParts[:2],
	}})
	m, _ = press(m, "/")
	if m.ui.Focus.Current() != ui.FocusFilter {
		t.Fatalf("expected filter focus, got %v", m.ui.Focus.Current())
	}

	next, _ := m.Update(seedDoneMsg{ready: true})
	m = next.(Model)
	if m.ui.Browser.FilterActive() {
		t.Error("reloading the type should close the filter")
	}
	if m.ui.Focus.Current() != ui.FocusMain {
		t.Fatalf("expected main focus after the reload, got %v", m.ui.Focus.Current())
	}

	m, cmd := press(m, "q")
	if !m.quitting || cmd == nil || !isQuit(cmd) {
		t.Error("q should reach the global key map again")
	}
}

func TestSeedFailureStillRechecks(t *testing.T) {
	m, fc, _ := newTestModel(t)
	fc.Components = nil
	fc.SeedErr = errors.New("boom")
	m = feed(m, collectMsgs(m.Init()))

	m, cmd := press(m, "S")
	var done seedDoneMsg
	for _, msg := range collectMsgs(cmd) {
		if d, ok := msg.(seedDoneMsg); ok {
			done = d
		}
	}
	if done.err == nil {
		t.Fatal("expected seed error in message")
	}

	next, _ := m.Update(done)
	m = next.(Model)
	if m.state.Session.Seeding() {
		t.Error("seeding flag should clear")
	}
	if m.state.Session.CatalogReady() {
		t.Error("catalog still empty, should not be ready")
	}
	if m.ui.Toast.Message() != "Seeding failed" {
		t.Errorf("expected failure toast, got %q", m.ui.Toast.Message())
	}
}

func TestSeedIgnoredWhenReady(t *testing.T) {
	m, fc, _ := started(t)
	_, cmd := press(m, "S")
	if cmd != nil {
		t.Error("S with a ready catalog should do nothing")
	}
	if fc.SeedCalls() != 0 {
		t.Errorf("unexpected seed calls: %d", fc.SeedCalls())
	}
}

func TestUnreachableCatalogIsNotReady(t *testing.T) {
	m, fc, _ := newTestModel(t)
	fc.ListErr = errors.New("dial tcp: connection refused")
	m = feed(m, collectMsgs(m.Init()))

	if m.state.Session.CatalogReady() {
		t.Error("unreachable catalog must count as not ready")
	}
	if len(m.ui.Browser.Items()) != 0 {
		t.Error("failed fetch should leave an empty list")
	}
	if m.ui.Browser.IsLoading() {
		t.Error("failed fetch should stop loading")
	}
}

func TestOpenPartUsesRegionLink(t *testing.T) {
	deps, _, _ := newTestDependencies()
	var opened string
	deps.OpenURL = func(u string) error {
		opened = u
		return nil
	}
	m := initialModel(context.Background(), AppContext{Region: "uk"}, deps)
	m = feed(m, collectMsgs(m.Init()))

	_, cmd := press(m, "o")
	collectMsgs(cmd)

	want := "https://uk.pcpartpicker.com/search/?q=AMD+Ryzen+5+7600"
	if opened != want {
		t.Errorf("opened %q, want %q", opened, want)
	}
}

func TestOpenPartFailureShowsToast(t *testing.T) {
	deps, _, _ := newTestDependencies()
	deps.OpenURL = func(string) error { return errors.New("no browser") }
	m := initialModel(context.Background(), AppContext{}, deps)
	m = feed(m, collectMsgs(m.Init()))

	m, cmd := press(m, "o")
	m = feed(m, collectMsgs(cmd))
	if m.ui.Toast.Message() != "Could not open a browser" {
		t.Errorf("unexpected toast %q", m.ui.Toast.Message())
	}
}

func TestCopyBuild(t *testing.T) {
	deps, _, _ := newTestDependencies()
	var copied string
	deps.CopyText = func(s string) error {
		copied = s
		return nil
	}
	m := initialModel(context.Background(), AppContext{}, deps)
	m = feed(m, collectMsgs(m.Init()))

	m, cmd := press(m, "enter")
	m = feed(m, collectMsgs(cmd))

	m, cmd = press(m, "y")
	m = feed(m, collectMsgs(cmd))

	if !strings.Contains(copied, "Ryzen 5 7600") || !strings.Contains(copied, "$200.00") {
		t.Errorf("copied text missing build details:\n%s", copied)
	}
	if m.ui.Toast.Message() != "Copied build (1 part)" {
		t.Errorf("unexpected toast %q", m.ui.Toast.Message())
	}
}

func TestFilterOwnsKeyboard(t *testing.T) {
	m, _, _ := started(t)

	m, _ = press(m, "/")
	if m.ui.Focus.Current() != ui.FocusFilter {
		t.Fatalf("expected filter focus, got %v", m.ui.Focus.Current())
	}

	// q types into the filter instead of quitting
	m, _ = press(m, "q")
	if m.quitting {
		t.Fatal("q should not quit while filtering")
	}

	m, _ = press(m, "esc")
	if m.ui.Focus.Current() != ui.FocusMain {
		t.Errorf("expected main focus after esc, got %v", m.ui.Focus.Current())
	}
}

func isQuit(cmd tea.Cmd) bool {
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := started(t)
	m, _ = press(m, "?")
	if m.ui.Focus.Current() != ui.FocusHelp {
		t.Fatalf("expected help focus, got %v", m.ui.Focus.Current())
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help should be rendered")
	}
	m, _ = press(m, "?")
	if m.ui.Focus.Current() != ui.FocusMain {
		t.Errorf("expected main focus, got %v", m.ui.Focus.Current())
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := started(t)
	m, cmd := press(m, "q")
	if !m.quitting || cmd == nil || !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestFormatClipboardMessage(t *testing.T) {
	if got := FormatClipboardMessage(1); got != "Copied build (1 part)" {
		t.Errorf("got %q", got)
	}
	if got := FormatClipboardMessage(3); got != "Copied build (3 parts)" {
		t.Errorf("got %q", got)
	}
}
