package usecase

import (
	"context"
	"fmt"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
)

// Suggest projects the first entries of the ranked batch. Nothing is recomputed.
func (uc *implUseCase) Suggest(ctx context.Context, input analyzer.SuggestInput) (analyzer.SuggestOutput, error) {
	out, err := uc.Analyze(ctx, input.AnalyzeInput)
	if err != nil {
		return analyzer.SuggestOutput{}, err
	}
	if out.Cycle != nil {
		return analyzer.SuggestOutput{}, &analyzer.CycleError{Path: out.Cycle, Errors: out.Errors}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.suggestLimit
	}
	top := out.Sorted[:min(limit, len(out.Sorted))]

	suggestions := make([]analyzer.Suggestion, 0, len(top))
	for _, t := range top {
		suggestions = append(suggestions, analyzer.Suggestion{
			Task:   t,
			Reason: suggestionReason(t),
		})
	}

	return analyzer.SuggestOutput{
		Suggestions: suggestions,
		Errors:      out.Errors,
	}, nil
}

func suggestionReason(t model.ScoredTask) string {
	return fmt.Sprintf("Score %s: urgency=%s, importance=%s, effort=%s",
		formatNumber(t.Score),
		formatNumber(t.Explanation.Urgency),
		formatNumber(t.Explanation.Importance),
		formatNumber(t.Explanation.Effort),
	)
}
