package main

import (
	"io"
	"log/slog"

	"github.com/pkg/browser"

	"github.com/rfhold/partpick/internal/backend"
	"github.com/rfhold/partpick/internal/config"
)

// Dependencies holds all external dependencies for the application.
// These can be replaced with test doubles for unit testing.
type Dependencies struct {
	Catalog   backend.CatalogReader
	Seeder    backend.CatalogSeeder
	Evaluator backend.Evaluator
	// OpenURL launches a browser; nil disables the open action
	OpenURL func(url string) error
	// CopyText writes to the clipboard; nil uses the system clipboard
	CopyText func(text string) error
	Logger   *slog.Logger
}

// NewProductionDependencies creates dependencies backed by the HTTP client
func NewProductionDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	client, err := backend.NewClient(cfg.BackendURL, backend.ClientOptions{
		Timeout: cfg.Timeout.Duration,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	// The launcher's own output would draw over the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &Dependencies{
		Catalog:   client,
		Seeder:    client,
		Evaluator: client,
		OpenURL:   browser.OpenURL,
		Logger:    logger,
	}, nil
}
