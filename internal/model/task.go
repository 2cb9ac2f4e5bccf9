package model

import "time"

// Task is a validated task entity. It is only ever built by the normalizer,
// so every Task in a batch carries a unique non-empty ID.
type Task struct {
	ID             string
	Title          string
	DueDate        *time.Time // calendar date at midnight UTC; nil means no deadline
	EstimatedHours *float64   // nil means unknown effort
	Importance     *float64   // nil means unknown importance
	Dependencies   []string   // ids of tasks this one waits on
}

// DependsOn reports whether t lists id as a dependency.
func (t Task) DependsOn(id string) bool {
	for _, dep := range t.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}

// TaskGraph is a batch of tasks keyed by id. It lives for one scoring call.
type TaskGraph map[string]Task

// Explanation carries the factor sub-scores behind a total score.
type Explanation struct {
	Urgency    float64      `json:"urgency"`
	Importance float64      `json:"importance"`
	Effort     float64      `json:"effort"`
	Dependency float64      `json:"dependency"`
	Weights    WeightVector `json:"weights"`
}

// PriorityBand buckets a total score for display.
type PriorityBand string

const (
	PriorityHigh   PriorityBand = "high"
	PriorityMedium PriorityBand = "medium"
	PriorityLow    PriorityBand = "low"
)

// BandFor returns the band a score falls in.
func BandFor(score float64) PriorityBand {
	switch {
	case score >= 7.5:
		return PriorityHigh
	case score >= 4.5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ScoredTask is a task together with its total score and explanation.
type ScoredTask struct {
	Task
	Score       float64
	Explanation Explanation
	Band        PriorityBand
}
