package usecase

import (
	"math"
	"time"

	"smart-task-analyzer/internal/model"
)

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// scoreTask blends the four factor scores with w. The total is a convex
// combination of values in [0,10] and is not clamped again.
func scoreTask(t model.Task, graph model.TaskGraph, w model.WeightVector, today time.Time) model.ScoredTask {
	urgency := urgencyScore(t, today)
	importance := importanceScore(t)
	effort := effortScore(t)
	dependency := dependencyScore(t, graph)

	total := w.Urgency*urgency +
		w.Importance*importance +
		w.Effort*effort +
		w.Dependency*dependency
	score := round3(total)

	return model.ScoredTask{
		Task:  t,
		Score: score,
		Explanation: model.Explanation{
			Urgency:    round3(urgency),
			Importance: round3(importance),
			Effort:     round3(effort),
			Dependency: round3(dependency),
			Weights:    w,
		},
		Band: model.BandFor(score),
	}
}
