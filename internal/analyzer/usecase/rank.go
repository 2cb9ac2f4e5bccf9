package usecase

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
)

const unknownEffortSentinel = 9999.0

var noDueDateSentinel = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func dueKey(t model.ScoredTask) time.Time {
	if t.DueDate == nil {
		return noDueDateSentinel
	}
	return *t.DueDate
}

func effortKey(t model.ScoredTask) float64 {
	if t.EstimatedHours == nil {
		return unknownEffortSentinel
	}
	return *t.EstimatedHours
}

func importanceKey(t model.ScoredTask) float64 {
	if t.Importance == nil {
		return 0
	}
	return *t.Importance
}

// comparePriority orders by score desc, then earlier due date, then smaller
// effort, then title.
func comparePriority(a, b model.ScoredTask) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := dueKey(a).Compare(dueKey(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(effortKey(a), effortKey(b)); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}

// rankTasks returns a ranked copy of scored. Equal keys keep input order.
func rankTasks(scored []model.ScoredTask) []model.ScoredTask {
	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, comparePriority)
	return ranked
}

// applyStrategy reorders an already ranked list. Ties keep the ranked order.
func applyStrategy(ranked []model.ScoredTask, strategy analyzer.Strategy) []model.ScoredTask {
	var compare func(a, b model.ScoredTask) int

	switch strategy {
	case analyzer.StrategyFastest:
		compare = func(a, b model.ScoredTask) int { return cmp.Compare(effortKey(a), effortKey(b)) }
	case analyzer.StrategyImpact:
		compare = func(a, b model.ScoredTask) int { return cmp.Compare(importanceKey(b), importanceKey(a)) }
	case analyzer.StrategyDeadline:
		compare = func(a, b model.ScoredTask) int { return dueKey(a).Compare(dueKey(b)) }
	default:
		return ranked
	}

	out := slices.Clone(ranked)
	slices.SortStableFunc(out, compare)
	return out
}
