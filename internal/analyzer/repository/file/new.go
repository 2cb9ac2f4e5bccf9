package file

import (
	"smart-task-analyzer/internal/analyzer/repository"
	"smart-task-analyzer/pkg/log"
)

type implRepository struct {
	l    log.Logger
	path string
}

var _ repository.WeightRepository = (*implRepository)(nil)

// New creates a weight repository backed by the file at path. An empty path
// means "no external source".
func New(l log.Logger, path string) *implRepository {
	return &implRepository{
		l:    l,
		path: path,
	}
}
