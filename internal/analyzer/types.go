package analyzer

import (
	"time"

	"smart-task-analyzer/internal/model"
)

// Record is one loosely-typed task record as decoded from JSON.
type Record = map[string]any

// Strategy selects the order of AnalyzeOutput.Sorted.
type Strategy string

const (
	StrategySmart    Strategy = "smart"
	StrategyFastest  Strategy = "fastest"
	StrategyImpact   Strategy = "impact"
	StrategyDeadline Strategy = "deadline"
)

// ParseStrategy maps a request value to a Strategy. Empty selects smart.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategySmart:
		return StrategySmart, nil
	case StrategyFastest, StrategyImpact, StrategyDeadline:
		return Strategy(s), nil
	}
	return "", ErrUnknownStrategy
}

// DefaultSuggestLimit is the number of suggestions returned when no limit is given.
const DefaultSuggestLimit = 3

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Records  []Record
	Weights  *model.WeightVector // overrides the configured weights when set; must sum to 1.0
	Today    *time.Time          // reference date; defaults to the clock in the configured timezone
	Strategy Strategy
}

type SuggestInput struct {
	AnalyzeInput
	Limit int
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Tasks  []model.ScoredTask // input order
	Sorted []model.ScoredTask // ranked order
	Cycle  []string           // first dependency cycle found; nil when acyclic
	Errors []string           // per-record normalization errors
}

type Suggestion struct {
	Task   model.ScoredTask
	Reason string
}

type SuggestOutput struct {
	Suggestions []Suggestion
	Errors      []string
}
