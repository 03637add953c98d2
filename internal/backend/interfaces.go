package backend

import (
	"context"

	"github.com/rfhold/partpick/internal/catalog"
)

// AllComponents is passed to ListComponents to request the unfiltered catalog
const AllComponents catalog.ComponentType = ""

// CatalogReader lists purchasable components.
type CatalogReader interface {
	// ListComponents returns the components of type t, or every component
	// when t is AllComponents. An empty slice is a valid answer.
	ListComponents(ctx context.Context, t catalog.ComponentType) ([]catalog.Component, error)
}

// CatalogSeeder populates an empty catalog with a baseline set of parts.
type CatalogSeeder interface {
	// Seed requests seeding. Success is signalled by a nil error only;
	// the response body carries no meaning.
	Seed(ctx context.Context) error
}

// Evaluator validates a build.
type Evaluator interface {
	// Evaluate submits the selected component identifiers keyed by type and
	// returns the service verdict.
	Evaluate(ctx context.Context, selections map[catalog.ComponentType]string) (*catalog.EvaluationResult, error)
}

// Backend is the full remote surface used by the application
type Backend interface {
	CatalogReader
	CatalogSeeder
	Evaluator
}
