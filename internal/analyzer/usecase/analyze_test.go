package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("overdue task outranks the same task due later", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{
				{"id": "future", "title": "Future Task", "due_date": daysFromToday(10), "estimated_hours": float64(2), "importance": float64(5), "dependencies": []any{}},
				{"id": "overdue", "title": "Overdue Task", "due_date": daysFromToday(-2), "estimated_hours": float64(2), "importance": float64(5), "dependencies": []any{}},
			},
			Today: &testToday,
		})
		require.NoError(t, err)
		require.Len(t, out.Sorted, 2)

		scores := map[string]float64{}
		for _, st := range out.Sorted {
			scores[st.ID] = st.Score
		}
		assert.Greater(t, scores["overdue"], scores["future"])
		assert.Equal(t, "overdue", out.Sorted[0].ID)
		assert.InDelta(t, 6.65, scores["overdue"], 1e-9)
		assert.InDelta(t, 3.15, scores["future"], 1e-9)
		assert.Nil(t, out.Cycle)
		assert.Empty(t, out.Errors)
	})

	t.Run("bare record gets a synthetic id and all defaults", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{Records: []analyzer.Record{{}}})
		require.NoError(t, err)
		require.Len(t, out.Sorted, 1)

		got := out.Sorted[0]
		assert.Equal(t, "__generated__0", got.ID)
		assert.Equal(t, 2.0, got.Explanation.Urgency)
		assert.Equal(t, 5.0, got.Explanation.Importance)
		assert.Equal(t, 5.0, got.Explanation.Effort)
		assert.Equal(t, 0.0, got.Explanation.Dependency)
		assert.InDelta(t, 3.45, got.Score, 1e-9)
	})

	t.Run("cycle rejects the whole batch", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{
				{"id": "A", "title": "A", "dependencies": []any{"B"}},
				{"id": "B", "title": "B", "dependencies": []any{"A"}},
				{"id": "C", "title": "C"},
				{"title": "broken", "importance": "very"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, out.Cycle)
		assert.NotNil(t, out.Tasks)
		assert.Empty(t, out.Tasks)
		assert.NotNil(t, out.Sorted)
		assert.Empty(t, out.Sorted)
		require.Len(t, out.Errors, 1)
		assert.Contains(t, out.Errors[0], "Invalid importance for task 'broken'")
	})

	t.Run("invalid records are reported and the rest scored", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{
				{"id": "ok", "title": "ok"},
				{"id": "bad", "title": "bad", "due_date": "31/12/2024"},
				{"id": "worse", "title": "worse", "dependencies": map[string]any{"a": 1}},
			},
		})
		require.NoError(t, err)

		assert.Len(t, out.Tasks, 1)
		assert.Len(t, out.Errors, 2)
		assert.Nil(t, out.Cycle)
	})

	t.Run("tasks keep input order, sorted is ranked", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{
				{"id": "1", "title": "low", "importance": float64(1)},
				{"id": "2", "title": "high", "importance": float64(9)},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"low", "high"}, titles(out.Tasks))
		assert.Equal(t, []string{"high", "low"}, titles(out.Sorted))
	})

	t.Run("blocked-on task gets a dependency boost", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{
				{"id": "base", "title": "base"},
				{"id": "x", "title": "x", "dependencies": []any{"base", "missing"}},
				{"id": "y", "title": "y", "dependencies": []any{"base"}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "base", out.Sorted[0].ID)
		assert.Equal(t, 4.0, out.Sorted[0].Explanation.Dependency)
	})

	t.Run("configured weights are read once per call", func(t *testing.T) {
		repo := &mockWeightRepo{weights: model.WeightVector{Urgency: 1}}
		uc := newTestUseCase(repo)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{{"title": "a"}, {"title": "b"}, {"title": "c"}},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, repo.calls)
		for _, st := range out.Tasks {
			assert.Equal(t, 2.0, st.Score)
			assert.Equal(t, repo.weights, st.Explanation.Weights)
		}
	})

	t.Run("request weights override the configured ones", func(t *testing.T) {
		repo := &mockWeightRepo{weights: model.DefaultWeights()}
		uc := newTestUseCase(repo)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{{"title": "a", "importance": float64(8)}},
			Weights: &model.WeightVector{Importance: 4},
		})
		require.NoError(t, err)

		assert.Equal(t, 0, repo.calls)
		assert.Equal(t, 8.0, out.Tasks[0].Score)
		assert.Equal(t, model.WeightVector{Importance: 1}, out.Tasks[0].Explanation.Weights)
	})

	t.Run("request weights with a non positive sum are rejected", func(t *testing.T) {
		uc := newTestUseCase(nil)

		_, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{{"title": "a"}},
			Weights: &model.WeightVector{Urgency: -1},
		})
		assert.True(t, errors.Is(err, analyzer.ErrInvalidWeights))
	})

	t.Run("today defaults to the clock", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{{"title": "a", "due_date": daysFromToday(4)}},
		})
		require.NoError(t, err)

		assert.Equal(t, 6.0, out.Tasks[0].Explanation.Urgency)
	})

	t.Run("strategy reorders sorted only", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{
			Records: []analyzer.Record{
				{"id": "quick", "title": "quick", "estimated_hours": float64(0.5), "importance": float64(1)},
				{"id": "big", "title": "big", "estimated_hours": float64(20), "importance": float64(10)},
			},
			Strategy: analyzer.StrategyFastest,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"quick", "big"}, titles(out.Sorted))
		assert.Equal(t, []string{"quick", "big"}, titles(out.Tasks))
	})

	t.Run("empty batch", func(t *testing.T) {
		uc := newTestUseCase(nil)

		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{Records: []analyzer.Record{}})
		require.NoError(t, err)

		assert.NotNil(t, out.Tasks)
		assert.Empty(t, out.Tasks)
		assert.NotNil(t, out.Errors)
		assert.Nil(t, out.Cycle)
	})
}

func TestAnalyze_Idempotent(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	input := analyzer.AnalyzeInput{
		Records: []analyzer.Record{
			{"id": "a", "title": "a", "due_date": daysFromToday(1), "estimated_hours": float64(3)},
			{"id": "b", "title": "b", "importance": float64(7), "dependencies": []any{"a"}},
			{"id": "a", "title": "dup"},
			{"title": "bad", "estimated_hours": "x"},
		},
		Today: &testToday,
	}

	first, err := uc.Analyze(ctx, input)
	require.NoError(t, err)
	second, err := uc.Analyze(ctx, input)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}
