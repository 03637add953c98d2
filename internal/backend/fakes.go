package backend

import (
	"context"
	"maps"
	"sync"

	"github.com/rfhold/partpick/internal/catalog"
)

// FakeCatalog implements CatalogReader and CatalogSeeder for testing.
// Configure behavior via fields or function overrides; calls are recorded.
// Safe for use from tea.Cmd goroutines.
type FakeCatalog struct {
	mu sync.Mutex

	// Components is the catalog content, filtered by type on ListComponents
	Components []catalog.Component
	// ListErr, when set, is returned by every ListComponents call
	ListErr error
	// ListFunc optionally overrides ListComponents entirely
	ListFunc func(ctx context.Context, t catalog.ComponentType) ([]catalog.Component, error)

	// SeedComponents replaces Components when Seed succeeds
	SeedComponents []catalog.Component
	// SeedErr, when set, is returned by Seed
	SeedErr error

	// Calls tracks invocations for assertions
	Calls struct {
		List []catalog.ComponentType
		Seed int
	}
}

var (
	_ CatalogReader = (*FakeCatalog)(nil)
	_ CatalogSeeder = (*FakeCatalog)(nil)
)

func (f *FakeCatalog) ListComponents(ctx context.Context, t catalog.ComponentType) ([]catalog.Component, error) {
	f.mu.Lock()
	f.Calls.List = append(f.Calls.List, t)
	fn := f.ListFunc
	err := f.ListErr
	all := append([]catalog.Component(nil), f.Components...)
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, t)
	}
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Component, 0, len(all))
	for _, c := range all {
		if t == AllComponents || c.Type == t {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *FakeCatalog) Seed(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls.Seed++
	if f.SeedErr != nil {
		return f.SeedErr
	}
	if f.SeedComponents != nil {
		f.Components = append([]catalog.Component(nil), f.SeedComponents...)
	}
	return nil
}

// ListCalls returns a copy of the recorded ListComponents types
func (f *FakeCatalog) ListCalls() []catalog.ComponentType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalog.ComponentType(nil), f.Calls.List...)
}

// SeedCalls returns how many times Seed was called
func (f *FakeCatalog) SeedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls.Seed
}

// FakeEvaluator implements Evaluator for testing.
type FakeEvaluator struct {
	mu sync.Mutex

	// Result is returned by Evaluate when Err is nil
	Result *catalog.EvaluationResult
	// Err, when set, is returned by Evaluate
	Err error
	// EvaluateFunc optionally overrides Evaluate entirely
	EvaluateFunc func(ctx context.Context, selections map[catalog.ComponentType]string) (*catalog.EvaluationResult, error)

	// Calls records the selections passed to each Evaluate call
	Calls []map[catalog.ComponentType]string
}

var _ Evaluator = (*FakeEvaluator)(nil)

func (f *FakeEvaluator) Evaluate(ctx context.Context, selections map[catalog.ComponentType]string) (*catalog.EvaluationResult, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, maps.Clone(selections))
	fn := f.EvaluateFunc
	result, err := f.Result, f.Err
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, selections)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EvaluateCalls returns a copy of the recorded selections
func (f *FakeEvaluator) EvaluateCalls() []map[catalog.ComponentType]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[catalog.ComponentType]string(nil), f.Calls...)
}
