package repository

import (
	"context"

	"smart-task-analyzer/internal/model"
)

//go:generate mockery --name WeightRepository
type WeightRepository interface {
	// LoadWeights resolves the scoring weights. It never fails: any problem
	// with the underlying source degrades to model.DefaultWeights().
	LoadWeights(ctx context.Context) model.WeightVector
}
