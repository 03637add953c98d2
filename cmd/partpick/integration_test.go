//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"

	"github.com/rfhold/partpick/internal/build"
	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/stub"
)

func init() {
	// Force consistent color profile for reproducible tests across environments
	lipgloss.SetColorProfile(termenv.Ascii)
}

const (
	termWidth  = 120
	termHeight = 40
)

type outputCapture struct {
	tm       *teatest.TestModel
	captured bytes.Buffer
	mu       sync.Mutex
}

func (oc *outputCapture) Read(p []byte) (n int, err error) {
	n, err = oc.tm.Output().Read(p)
	if n > 0 {
		oc.mu.Lock()
		oc.captured.Write(p[:n])
		oc.mu.Unlock()
	}
	return n, err
}

func (oc *outputCapture) AllOutput() []byte {
	remaining, _ := io.ReadAll(oc.tm.Output())
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.captured.Write(remaining)
	return oc.captured.Bytes()
}

type testHarness struct {
	t       *testing.T
	tm      *teatest.TestModel
	capture *outputCapture
}

func newTestHarness(t *testing.T, deps *Dependencies) *testHarness {
	t.Helper()
	m := initialModel(context.Background(), AppContext{BackendURL: "http://stub.local", Region: "us"}, deps)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(termWidth, termHeight))
	return &testHarness{t: t, tm: tm, capture: &outputCapture{tm: tm}}
}

func (h *testHarness) Key(s string) {
	switch s {
	case "enter":
		h.tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "tab":
		h.tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	default:
		h.tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

// WaitFor blocks until content appears in output written since the last wait
func (h *testHarness) WaitFor(content string, timeout time.Duration) {
	h.t.Helper()
	teatest.WaitFor(h.t, h.capture,
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(content))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(timeout),
	)
}

func (h *testHarness) Quit() Model {
	h.t.Helper()
	h.Key("q")
	return h.tm.FinalModel(h.t, teatest.WithFinalTimeout(5*time.Second)).(Model)
}

func TestSeedPickAndEvaluate(t *testing.T) {
	t.Parallel()

	deps := newStubDependencies(t, stub.Options{})
	deps.OpenURL = func(string) error { return nil }
	deps.CopyText = func(string) error { return nil }
	h := newTestHarness(t, deps)

	h.WaitFor("Catalog is empty.", 5*time.Second)

	h.Key("S")
	h.WaitFor("Catalog ready", 5*time.Second)
	h.WaitFor("Ryzen 5 7600", 5*time.Second)

	h.Key("enter")
	h.WaitFor("$199.99", 5*time.Second)

	h.Key("e")
	h.WaitFor("Compatible", 5*time.Second)

	final := h.Quit()
	s := final.state.Session
	if !s.CatalogReady() {
		t.Error("catalog should be ready after seeding")
	}
	cpu, ok := s.Selection(catalog.TypeCPU)
	if !ok || cpu.ID != "cpu-7600" {
		t.Errorf("CPU = %+v, want cpu-7600", cpu)
	}
	if s.Phase() != build.PhaseValid {
		t.Errorf("phase = %v, want %v", s.Phase(), build.PhaseValid)
	}
}

func TestPreseededCatalogSwitchTypes(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, newStubDependencies(t, stub.Options{Preseed: true}))
	h.WaitFor("Catalog ready", 5*time.Second)
	h.WaitFor("Core i5-14600K", 5*time.Second)

	h.Key("tab")
	h.WaitFor("B650 Tomahawk WiFi", 5*time.Second)
	h.Key("enter")

	h.Key("?")
	h.WaitFor("Keyboard Shortcuts", 5*time.Second)
	h.Key("?")

	final := h.Quit()
	if final.ui.Browser.ActiveType() != catalog.TypeMotherboard {
		t.Errorf("active type = %v, want Motherboard", final.ui.Browser.ActiveType())
	}
	if !final.state.Session.HasSelection(catalog.TypeMotherboard) {
		t.Error("motherboard should be selected")
	}
	if final.state.Session.HasSelection(catalog.TypeCPU) {
		t.Error("no CPU was picked")
	}
}
