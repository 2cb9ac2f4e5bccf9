package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
)

func scored(title string, score float64, due *time.Time, hours, importance *float64) model.ScoredTask {
	return model.ScoredTask{
		Task: model.Task{
			ID:             title,
			Title:          title,
			DueDate:        due,
			EstimatedHours: hours,
			Importance:     importance,
		},
		Score: score,
	}
}

func titles(tasks []model.ScoredTask) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestRankTasks(t *testing.T) {
	soon := testToday.AddDate(0, 0, 1)
	later := testToday.AddDate(0, 0, 5)

	t.Run("higher score first", func(t *testing.T) {
		got := rankTasks([]model.ScoredTask{
			scored("low", 2, nil, nil, nil),
			scored("high", 8, nil, nil, nil),
			scored("mid", 5, nil, nil, nil),
		})
		assert.Equal(t, []string{"high", "mid", "low"}, titles(got))
	})

	t.Run("earlier due date breaks score ties, undated last", func(t *testing.T) {
		got := rankTasks([]model.ScoredTask{
			scored("undated", 5, nil, nil, nil),
			scored("later", 5, &later, nil, nil),
			scored("soon", 5, &soon, nil, nil),
		})
		assert.Equal(t, []string{"soon", "later", "undated"}, titles(got))
	})

	t.Run("smaller effort breaks due ties, unknown last", func(t *testing.T) {
		got := rankTasks([]model.ScoredTask{
			scored("unknown", 5, &soon, nil, nil),
			scored("long", 5, &soon, ptr(6.0), nil),
			scored("short", 5, &soon, ptr(0.5), nil),
		})
		assert.Equal(t, []string{"short", "long", "unknown"}, titles(got))
	})

	t.Run("title is the final tie break", func(t *testing.T) {
		got := rankTasks([]model.ScoredTask{
			scored("beta", 5, &soon, ptr(2.0), nil),
			scored("alpha", 5, &soon, ptr(2.0), nil),
		})
		assert.Equal(t, []string{"alpha", "beta"}, titles(got))
	})

	t.Run("identical keys keep input order", func(t *testing.T) {
		first := scored("same", 5, nil, nil, nil)
		first.ID = "first"
		second := scored("same", 5, nil, nil, nil)
		second.ID = "second"

		got := rankTasks([]model.ScoredTask{first, second})
		assert.Equal(t, "first", got[0].ID)
		assert.Equal(t, "second", got[1].ID)
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		in := []model.ScoredTask{scored("b", 1, nil, nil, nil), scored("a", 9, nil, nil, nil)}
		_ = rankTasks(in)
		assert.Equal(t, []string{"b", "a"}, titles(in))
	})
}

func TestApplyStrategy(t *testing.T) {
	soon := testToday.AddDate(0, 0, 1)
	later := testToday.AddDate(0, 0, 5)

	ranked := []model.ScoredTask{
		scored("top", 9, &later, ptr(5.0), ptr(3.0)),
		scored("mid", 6, nil, ptr(1.0), nil),
		scored("low", 3, &soon, nil, ptr(9.0)),
	}

	tests := []struct {
		strategy analyzer.Strategy
		want     []string
	}{
		{analyzer.StrategySmart, []string{"top", "mid", "low"}},
		{"", []string{"top", "mid", "low"}},
		{analyzer.StrategyFastest, []string{"mid", "top", "low"}},
		{analyzer.StrategyImpact, []string{"low", "top", "mid"}},
		{analyzer.StrategyDeadline, []string{"low", "top", "mid"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			assert.Equal(t, tt.want, titles(applyStrategy(ranked, tt.strategy)))
		})
	}
}
