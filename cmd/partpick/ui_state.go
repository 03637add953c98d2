package main

import "github.com/rfhold/partpick/internal/ui"

// UIState holds all UI component state.
// Components render from the session but never own build data.
type UIState struct {
	// Layout dimensions
	Width  int
	Height int

	// Focus management
	Focus ui.FocusStack

	// UI Components
	Header       ui.Header
	Browser      *ui.CatalogBrowser
	Build        *ui.BuildPanel
	Evaluation   *ui.EvaluationPanel
	Help         *ui.HelpDialog
	ConfirmModal *ui.ConfirmModal
	Toast        *ui.Toast
}

// NewUIState creates a new UIState with initialized components
func NewUIState() *UIState {
	return &UIState{
		Focus:        ui.NewFocusStack(),
		Header:       ui.NewHeader(),
		Browser:      ui.NewCatalogBrowser(),
		Build:        ui.NewBuildPanel(),
		Evaluation:   ui.NewEvaluationPanel(),
		Help:         ui.NewHelpDialog(),
		ConfirmModal: ui.NewConfirmModal(),
		Toast:        ui.NewToast(),
	}
}
