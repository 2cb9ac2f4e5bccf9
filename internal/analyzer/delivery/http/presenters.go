package http

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
	"smart-task-analyzer/pkg/datemath"
	"smart-task-analyzer/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	Tasks    []map[string]any `json:"tasks" binding:"required"`
	Weights  map[string]any   `json:"weights"`
	Today    string           `json:"today"`
	Strategy string           `json:"strategy"`
}

// validate rejects overrides that can never resolve, before any task is read.
func (r analyzeReq) validate() error {
	if _, err := analyzer.ParseStrategy(r.Strategy); err != nil {
		return fmt.Errorf("%w: %q", err, r.Strategy)
	}
	if _, err := parseWeights(r.Weights); err != nil {
		return err
	}
	return nil
}

// toInput resolves the optional overrides. now anchors relative "today" values.
func (r analyzeReq) toInput(p *datemath.Parser, now time.Time) (analyzer.AnalyzeInput, error) {
	strategy, err := analyzer.ParseStrategy(r.Strategy)
	if err != nil {
		return analyzer.AnalyzeInput{}, fmt.Errorf("%w: %q", err, r.Strategy)
	}

	weights, err := parseWeights(r.Weights)
	if err != nil {
		return analyzer.AnalyzeInput{}, err
	}

	today, err := parseToday(p, r.Today, now)
	if err != nil {
		return analyzer.AnalyzeInput{}, err
	}

	records := make([]analyzer.Record, len(r.Tasks))
	for i, t := range r.Tasks {
		records[i] = t
	}

	return analyzer.AnalyzeInput{
		Records:  records,
		Weights:  weights,
		Today:    today,
		Strategy: strategy,
	}, nil
}

// parseWeights reads a partial weight mapping. Missing or null factors keep
// their default value; unknown keys are ignored.
func parseWeights(raw map[string]any) (*model.WeightVector, error) {
	if raw == nil {
		return nil, nil
	}
	values := make(map[model.Factor]float64, len(model.Factors))
	for _, f := range model.Factors {
		v, ok := raw[string(f)]
		if !ok || v == nil {
			continue
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", analyzer.ErrInvalidWeights, f, err)
		}
		values[f] = n
	}
	w := model.WeightsFromMap(values)
	return &w, nil
}

func parseToday(p *datemath.Parser, expr string, now time.Time) (*time.Time, error) {
	if expr == "" {
		return nil, nil
	}
	today, err := p.Resolve(expr, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analyzer.ErrInvalidToday, err)
	}
	return &today, nil
}

// ---

type suggestReq struct {
	analyzeReq
	Limit int `json:"limit" binding:"omitempty,min=1,max=100"`
}

func (r suggestReq) toInput(p *datemath.Parser, now time.Time) (analyzer.SuggestInput, error) {
	in, err := r.analyzeReq.toInput(p, now)
	if err != nil {
		return analyzer.SuggestInput{}, err
	}
	return analyzer.SuggestInput{AnalyzeInput: in, Limit: r.Limit}, nil
}

// suggestQuery is the GET form of suggestReq. Tasks is a JSON-encoded array.
type suggestQuery struct {
	Tasks    string `form:"tasks"`
	Today    string `form:"today"`
	Strategy string `form:"strategy"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// --- Response DTOs ---

type scoredTaskResp struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	DueDate        *response.Date    `json:"due_date" swaggertype:"string" example:"2024-05-01"`
	EstimatedHours *float64          `json:"estimated_hours"`
	Importance     *float64          `json:"importance"`
	Dependencies   []string          `json:"dependencies"`
	Score          float64           `json:"score"`
	Explanation    model.Explanation `json:"explanation"`
	PriorityBand   string            `json:"priority_band"`
}

func newScoredTaskResp(t model.ScoredTask) scoredTaskResp {
	deps := t.Dependencies
	if deps == nil {
		deps = []string{}
	}
	return scoredTaskResp{
		ID:             t.ID,
		Title:          t.Title,
		DueDate:        response.NewDate(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		Importance:     t.Importance,
		Dependencies:   deps,
		Score:          t.Score,
		Explanation:    t.Explanation,
		PriorityBand:   string(t.Band),
	}
}

func newScoredTaskResps(tasks []model.ScoredTask) []scoredTaskResp {
	out := make([]scoredTaskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newScoredTaskResp(t)
	}
	return out
}

type analyzeResp struct {
	Tasks  []scoredTaskResp `json:"tasks"`
	Sorted []scoredTaskResp `json:"sorted"`
	Cycle  []string         `json:"cycle"`
	Errors []string         `json:"errors"`
}

func (h *handler) newAnalyzeResp(out analyzer.AnalyzeOutput) analyzeResp {
	errs := out.Errors
	if errs == nil {
		errs = []string{}
	}
	return analyzeResp{
		Tasks:  newScoredTaskResps(out.Tasks),
		Sorted: newScoredTaskResps(out.Sorted),
		Cycle:  out.Cycle,
		Errors: errs,
	}
}

type suggestionResp struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Score  float64        `json:"score"`
	Reason string         `json:"reason"`
	Task   scoredTaskResp `json:"task"`
}

type suggestResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newSuggestResp(out analyzer.SuggestOutput) suggestResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = suggestionResp{
			ID:     s.Task.ID,
			Title:  s.Task.Title,
			Score:  s.Task.Score,
			Reason: s.Reason,
			Task:   newScoredTaskResp(s.Task),
		}
	}
	return suggestResp{Suggestions: suggestions}
}

type cycleResp struct {
	Cycle []string `json:"cycle"`
}
