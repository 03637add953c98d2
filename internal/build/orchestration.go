package build

import (
	"context"
	"io"
	"log/slog"

	"github.com/rfhold/partpick/internal/backend"
	"github.com/rfhold/partpick/internal/catalog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger
	}
	return l
}

// RunEvaluation asks ev for a verdict on ids. It always returns a well-formed
// result: any failure becomes catalog.UnreachableResult.
func RunEvaluation(ctx context.Context, ev backend.Evaluator, ids map[catalog.ComponentType]string, logger *slog.Logger) catalog.EvaluationResult {
	logger = loggerOrDiscard(logger)
	if ev == nil {
		return catalog.UnreachableResult()
	}

	res, err := ev.Evaluate(ctx, ids)
	if err != nil {
		logger.Debug("evaluation failed", "selections", len(ids), "error", err)
		return catalog.UnreachableResult()
	}
	if res == nil {
		logger.Debug("evaluation returned no result", "selections", len(ids))
		return catalog.UnreachableResult()
	}

	out := *res
	if out.Issues == nil {
		out.Issues = []string{}
	}
	logger.Debug("evaluation settled",
		"valid", out.IsValid,
		"issues", len(out.Issues),
		"power_w", out.EstimatedPowerW)
	return out
}

// Evaluate runs a full evaluation synchronously and stores the verdict
func (s *Session) Evaluate(ctx context.Context, ev backend.Evaluator, logger *slog.Logger) catalog.EvaluationResult {
	rev, ids := s.BeginEvaluate()
	result := RunEvaluation(ctx, ev, ids, logger)
	s.FinishEvaluate(rev, result)
	return result
}

// CheckReadiness reports whether the catalog holds at least one component.
// An unreachable or malformed catalog counts as not ready.
func CheckReadiness(ctx context.Context, reader backend.CatalogReader, logger *slog.Logger) bool {
	logger = loggerOrDiscard(logger)
	items, err := reader.ListComponents(ctx, backend.AllComponents)
	if err != nil {
		logger.Debug("readiness check failed", "error", err)
		return false
	}
	logger.Debug("readiness check", "components", len(items))
	return len(items) > 0
}

// SeedAndRecheck seeds the catalog then rechecks readiness.
// The recheck runs whether or not the seed succeeded.
func SeedAndRecheck(ctx context.Context, seeder backend.CatalogSeeder, reader backend.CatalogReader, logger *slog.Logger) (ready bool, seedErr error) {
	logger = loggerOrDiscard(logger)
	if seedErr = seeder.Seed(ctx); seedErr != nil {
		logger.Debug("seed failed", "error", seedErr)
	}
	return CheckReadiness(ctx, reader, logger), seedErr
}
