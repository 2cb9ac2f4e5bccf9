package analyzer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCycleDetected     = errors.New("circular_dependency")
	ErrMissingTasksParam = errors.New("missing tasks parameter. Use POST /api/tasks/analyze/ instead.")
	ErrInvalidTasksJSON  = errors.New("invalid JSON in tasks parameter")
	ErrInvalidWeights    = errors.New("invalid weights")
	ErrInvalidToday      = errors.New("invalid today")
	ErrUnknownStrategy   = errors.New("unknown strategy")
)

// NormalizationError describes why one raw record was rejected.
type NormalizationError struct {
	Index int
	Title string
	Field string
	Err   error
}

func (e *NormalizationError) Error() string {
	if e.Field == "dependencies" {
		return "dependencies must be a list of task IDs"
	}
	return fmt.Sprintf("Invalid %s for task '%s': %v", e.Field, e.Title, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// CycleError reports the dependency cycle that aborted a batch.
type CycleError struct {
	Path   []string
	Errors []string // normalization errors collected before the cycle check
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCycleDetected, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}
