package main

import (
	"github.com/rfhold/partpick/internal/catalog"
)

// catalogReadinessMsg carries the result of a readiness check
type catalogReadinessMsg bool

// seedDoneMsg is sent after a seed request and the readiness check that follows it
type seedDoneMsg struct {
	ready bool
	err   error
}

// evaluationDoneMsg carries a verdict for the selection at revision rev
type evaluationDoneMsg struct {
	rev    uint64
	result catalog.EvaluationResult
}

// openURLErrMsg reports that the browser could not be launched
type openURLErrMsg struct {
	url string
	err error
}
