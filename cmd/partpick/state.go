package main

import (
	"github.com/rfhold/partpick/internal/build"
)

// InitState tracks startup until the first readiness check returns
type InitState int

const (
	InitCheckingCatalog InitState = iota
	InitComplete
)

func (s InitState) String() string {
	switch s {
	case InitCheckingCatalog:
		return "CheckingCatalog"
	case InitComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// AppState holds pure application state (no UI components).
// The build session is the single owner of selections and verdicts.
type AppState struct {
	InitState InitState
	Session   *build.Session
}

// NewAppState creates initial application state with default values
func NewAppState() *AppState {
	return &AppState{
		InitState: InitCheckingCatalog,
		Session:   build.NewSession(),
	}
}
