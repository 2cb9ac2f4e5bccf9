package usecase

import (
	"time"

	"smart-task-analyzer/internal/model"
	"smart-task-analyzer/pkg/datemath"
)

const (
	minScore = 0.0
	maxScore = 10.0

	noDeadlineUrgency    = 2.0
	neutralImportance    = 5.0
	neutralEffort        = 5.0
	missingIDDependency  = 2.0
	dependentsToSaturate = 5.0
)

func clampScore(v float64) float64 {
	return min(max(v, minScore), maxScore)
}

// urgencyScore decays linearly from 10 (due today) to 0 (due in 10+ days).
// Overdue tasks get the maximum and undated ones a flat 2.
func urgencyScore(t model.Task, today time.Time) float64 {
	if t.DueDate == nil {
		return noDeadlineUrgency
	}
	daysLeft := datemath.DaysBetween(today, *t.DueDate)
	if daysLeft < 0 {
		return maxScore
	}
	return clampScore(maxScore - float64(daysLeft))
}

func importanceScore(t model.Task) float64 {
	if t.Importance == nil {
		return neutralImportance
	}
	return clampScore(*t.Importance)
}

// effortScore favors quick wins. A zero or negative estimate reads as
// trivial but unmeasured and ranks just below the one-hour bucket.
func effortScore(t model.Task) float64 {
	if t.EstimatedHours == nil {
		return neutralEffort
	}
	h := *t.EstimatedHours
	var score float64
	switch {
	case h <= 0:
		score = 8.0
	case h <= 1:
		score = 10.0
	case h <= 3:
		score = 7.0
	case h <= 8:
		score = 4.0
	default:
		score = 1.0
	}
	return clampScore(score)
}

// dependencyScore grows with the number of other tasks waiting on t and
// saturates at five dependents.
func dependencyScore(t model.Task, graph model.TaskGraph) float64 {
	if t.ID == "" {
		return missingIDDependency
	}
	count := 0
	for id, other := range graph {
		if id != t.ID && other.DependsOn(t.ID) {
			count++
		}
	}
	if count == 0 {
		return minScore
	}
	return clampScore(float64(count) / dependentsToSaturate * maxScore)
}
