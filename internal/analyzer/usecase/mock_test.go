package usecase

import (
	"context"
	"time"

	"smart-task-analyzer/internal/model"
	"smart-task-analyzer/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock weight repository counting how often it is read
type mockWeightRepo struct {
	weights model.WeightVector
	calls   int
}

func (m *mockWeightRepo) LoadWeights(ctx context.Context) model.WeightVector {
	m.calls++
	return m.weights
}

var testToday = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockWeightRepo) *implUseCase {
	if repo == nil {
		repo = &mockWeightRepo{weights: model.DefaultWeights()}
	}
	parser, _ := datemath.NewParser("UTC")
	uc := New(&mockLogger{}, repo, parser, 0)
	uc.now = func() time.Time { return testToday.Add(15 * time.Hour) }
	return uc
}

func daysFromToday(n int) string {
	return datemath.FormatISODate(testToday.AddDate(0, 0, n))
}

func ptr[T any](v T) *T {
	return &v
}
