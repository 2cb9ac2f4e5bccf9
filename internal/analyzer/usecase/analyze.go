package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
	"smart-task-analyzer/pkg/datemath"
)

// Analyze normalizes the batch, rejects it on a dependency cycle and otherwise
// scores and ranks every valid task.
func (uc *implUseCase) Analyze(ctx context.Context, input analyzer.AnalyzeInput) (analyzer.AnalyzeOutput, error) {
	weights, err := uc.resolveWeights(ctx, input.Weights)
	if err != nil {
		return analyzer.AnalyzeOutput{}, err
	}
	today := uc.resolveToday(input.Today)

	tasks, graph, errs := normalizeBatch(input.Records)
	if len(errs) > 0 {
		uc.l.Debugf(ctx, "analyzer.usecase.Analyze: %d of %d records rejected", len(errs), len(input.Records))
	}

	if cycle := detectCycle(tasks, graph); cycle != nil {
		uc.l.Warnf(ctx, "analyzer.usecase.Analyze: dependency cycle %v", cycle)
		return analyzer.AnalyzeOutput{
			Tasks:  []model.ScoredTask{},
			Sorted: []model.ScoredTask{},
			Cycle:  cycle,
			Errors: errs,
		}, nil
	}

	scored := make([]model.ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, scoreTask(t, graph, weights, today))
	}

	return analyzer.AnalyzeOutput{
		Tasks:  scored,
		Sorted: applyStrategy(rankTasks(scored), input.Strategy),
		Errors: errs,
	}, nil
}

// resolveWeights prefers the per-request vector and otherwise reads the
// configured source once.
func (uc *implUseCase) resolveWeights(ctx context.Context, override *model.WeightVector) (model.WeightVector, error) {
	if override == nil {
		return uc.weights.LoadWeights(ctx), nil
	}
	w, err := override.Normalize()
	if err != nil {
		return model.WeightVector{}, fmt.Errorf("%w: %v", analyzer.ErrInvalidWeights, err)
	}
	return w, nil
}

func (uc *implUseCase) resolveToday(today *time.Time) time.Time {
	if today != nil {
		return datemath.Civil(*today)
	}
	return uc.dateMath.Today(uc.now())
}
