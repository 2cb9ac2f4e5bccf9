package usecase

import (
	"time"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/analyzer/repository"
	"smart-task-analyzer/pkg/datemath"
	pkgLog "smart-task-analyzer/pkg/log"
)

// implUseCase is the private implementation of analyzer.UseCase.
type implUseCase struct {
	l            pkgLog.Logger
	weights      repository.WeightRepository
	dateMath     *datemath.Parser
	suggestLimit int
	now          func() time.Time
}

var _ analyzer.UseCase = (*implUseCase)(nil)

// New creates a new analyzer UseCase. dateMath decides which calendar "today"
// is read from when a request does not pin it.
func New(
	l pkgLog.Logger,
	weights repository.WeightRepository,
	dateMath *datemath.Parser,
	suggestLimit int,
) *implUseCase {
	if suggestLimit <= 0 {
		suggestLimit = analyzer.DefaultSuggestLimit
	}
	return &implUseCase{
		l:            l,
		weights:      weights,
		dateMath:     dateMath,
		suggestLimit: suggestLimit,
		now:          time.Now,
	}
}
