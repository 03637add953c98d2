package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rfhold/partpick/internal/buildfile"
	"github.com/rfhold/partpick/internal/report"
)

// Exit codes for check mode
const (
	exitValid   = 0
	exitError   = 1
	exitInvalid = 2
)

// runCheck evaluates a saved build without the TUI and prints the report.
// Unknown part ids are reported on stderr and left out of the build.
// A build with nothing left to check is an error and is never evaluated.
func runCheck(ctx context.Context, path, region string, deps *Dependencies, stdout, stderr io.Writer) int {
	f, err := buildfile.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	s, problems := f.Resolve(ctx, deps.Catalog)
	for _, p := range problems {
		fmt.Fprintf(stderr, "Warning: %v\n", p)
	}
	deps.Logger.Debug("build resolved", "file", path, "parts", s.Len(), "problems", len(problems))
	if s.Len() == 0 {
		fmt.Fprintln(stderr, "Error: no parts could be resolved")
		return exitError
	}

	if f.Name != "" {
		fmt.Fprintf(stdout, "%s\n\n", f.Name)
	}

	result := s.Evaluate(ctx, deps.Evaluator, deps.Logger)
	if err := report.Write(stdout, s, report.Options{Region: region}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if result.IsValid {
		return exitValid
	}
	return exitInvalid
}
