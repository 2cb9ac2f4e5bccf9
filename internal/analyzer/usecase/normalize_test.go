package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-analyzer/internal/analyzer"
)

func TestNormalizeRecord(t *testing.T) {
	t.Run("fills defaults for an empty record", func(t *testing.T) {
		task, err := normalizeRecord(analyzer.Record{}, 0)
		require.NoError(t, err)

		assert.Equal(t, "", task.ID)
		assert.Equal(t, "", task.Title)
		assert.Nil(t, task.DueDate)
		assert.Nil(t, task.EstimatedHours)
		assert.Nil(t, task.Importance)
		assert.Equal(t, []string{}, task.Dependencies)
	})

	t.Run("coerces loose values", func(t *testing.T) {
		task, err := normalizeRecord(analyzer.Record{
			"id":              float64(7),
			"title":           "  Write report  ",
			"due_date":        "2024-05-03T18:30:00Z",
			"estimated_hours": "2.5",
			"importance":      float64(8),
			"dependencies":    []any{float64(1), "b"},
		}, 0)
		require.NoError(t, err)

		assert.Equal(t, "7", task.ID)
		assert.Equal(t, "Write report", task.Title)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, "2024-05-03", task.DueDate.Format("2006-01-02"))
		assert.Equal(t, 2.5, *task.EstimatedHours)
		assert.Equal(t, 8.0, *task.Importance)
		assert.Equal(t, []string{"1", "b"}, task.Dependencies)
	})

	t.Run("numeric strings may carry surrounding whitespace", func(t *testing.T) {
		task, err := normalizeRecord(analyzer.Record{
			"estimated_hours": " 3 ",
			"importance":      "\t7.5\n",
		}, 0)
		require.NoError(t, err)

		require.NotNil(t, task.EstimatedHours)
		assert.Equal(t, 3.0, *task.EstimatedHours)
		require.NotNil(t, task.Importance)
		assert.Equal(t, 7.5, *task.Importance)
	})

	t.Run("treats empty optional fields as unset", func(t *testing.T) {
		task, err := normalizeRecord(analyzer.Record{
			"due_date":        "",
			"estimated_hours": nil,
			"importance":      nil,
			"dependencies":    nil,
		}, 0)
		require.NoError(t, err)

		assert.Nil(t, task.DueDate)
		assert.Nil(t, task.EstimatedHours)
		assert.Nil(t, task.Importance)
		assert.Empty(t, task.Dependencies)
	})

	tests := []struct {
		name    string
		raw     analyzer.Record
		wantMsg string
	}{
		{
			name:    "malformed due date",
			raw:     analyzer.Record{"title": "Report", "due_date": "next-ish"},
			wantMsg: "Invalid due_date for task 'Report'",
		},
		{
			name:    "non string due date",
			raw:     analyzer.Record{"title": "Report", "due_date": float64(20240501)},
			wantMsg: "Invalid due_date for task 'Report'",
		},
		{
			name:    "non numeric hours",
			raw:     analyzer.Record{"title": "Report", "estimated_hours": "a while"},
			wantMsg: "Invalid estimated_hours for task 'Report'",
		},
		{
			name:    "non numeric importance",
			raw:     analyzer.Record{"title": "Report", "importance": []any{1}},
			wantMsg: "Invalid importance for task 'Report'",
		},
		{
			name:    "dependencies not a list",
			raw:     analyzer.Record{"title": "Report", "dependencies": "A"},
			wantMsg: "dependencies must be a list of task IDs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeRecord(tt.raw, 3)
			require.Error(t, err)

			var normErr *analyzer.NormalizationError
			require.ErrorAs(t, err, &normErr)
			assert.Equal(t, 3, normErr.Index)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNormalizeBatch(t *testing.T) {
	t.Run("generates ids from the input index", func(t *testing.T) {
		tasks, graph, errs := normalizeBatch([]analyzer.Record{
			{"title": "bad", "due_date": "nope"},
			{"title": "first"},
			{"id": "", "title": "second"},
		})

		require.Len(t, tasks, 2)
		assert.Equal(t, "__generated__1", tasks[0].ID)
		assert.Equal(t, "__generated__2", tasks[1].ID)
		assert.Len(t, graph, 2)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "Invalid due_date for task 'bad'")
	})

	t.Run("keeps duplicate ids apart", func(t *testing.T) {
		tasks, graph, errs := normalizeBatch([]analyzer.Record{
			{"id": "x", "title": "one"},
			{"id": "x", "title": "two"},
			{"id": "x", "title": "three"},
		})

		assert.Empty(t, errs)
		require.Len(t, tasks, 3)
		assert.Equal(t, "x", tasks[0].ID)
		assert.Equal(t, "x__dup__1", tasks[1].ID)
		assert.Equal(t, "x__dup__2", tasks[2].ID)
		assert.Len(t, graph, 3)
		assert.Equal(t, "two", graph["x__dup__1"].Title)
	})

	t.Run("mangles again when the mangled id is taken", func(t *testing.T) {
		tasks, _, _ := normalizeBatch([]analyzer.Record{
			{"id": "x__dup__2"},
			{"id": "x"},
			{"id": "x"},
		})

		require.Len(t, tasks, 3)
		assert.Equal(t, "x__dup__2__dup__2", tasks[2].ID)
	})
}
