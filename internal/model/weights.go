package model

import (
	"errors"
	"fmt"
)

// Factor names a scoring factor.
type Factor string

const (
	FactorUrgency    Factor = "urgency"
	FactorImportance Factor = "importance"
	FactorEffort     Factor = "effort"
	FactorDependency Factor = "dependency"
)

// Factors lists the canonical factors in their fixed order.
var Factors = []Factor{FactorUrgency, FactorImportance, FactorEffort, FactorDependency}

// ErrNonPositiveWeightSum is returned when weights cannot be normalized.
var ErrNonPositiveWeightSum = errors.New("weights sum must be positive")

// WeightVector holds one multiplier per factor. Vectors handed to the
// aggregator always sum to 1.0.
type WeightVector struct {
	Urgency    float64 `json:"urgency"`
	Importance float64 `json:"importance"`
	Effort     float64 `json:"effort"`
	Dependency float64 `json:"dependency"`
}

// DefaultWeights returns the default weight vector. It is a fresh value on
// every call, so callers can never alter the defaults.
func DefaultWeights() WeightVector {
	return WeightVector{
		Urgency:    0.35,
		Importance: 0.35,
		Effort:     0.20,
		Dependency: 0.10,
	}
}

// Get returns the weight for f.
func (w WeightVector) Get(f Factor) float64 {
	switch f {
	case FactorUrgency:
		return w.Urgency
	case FactorImportance:
		return w.Importance
	case FactorEffort:
		return w.Effort
	case FactorDependency:
		return w.Dependency
	}
	return 0
}

// Sum returns the total of all weights.
func (w WeightVector) Sum() float64 {
	return w.Urgency + w.Importance + w.Effort + w.Dependency
}

// Normalize divides every weight by the sum so the result sums to 1.0.
func (w WeightVector) Normalize() (WeightVector, error) {
	total := w.Sum()
	if total <= 0 {
		return WeightVector{}, fmt.Errorf("%w: got %.4f", ErrNonPositiveWeightSum, total)
	}
	return WeightVector{
		Urgency:    w.Urgency / total,
		Importance: w.Importance / total,
		Effort:     w.Effort / total,
		Dependency: w.Dependency / total,
	}, nil
}

// WeightsFromMap builds a vector from partial values, filling missing
// factors from the defaults. The result is not normalized.
func WeightsFromMap(values map[Factor]float64) WeightVector {
	w := DefaultWeights()
	if v, ok := values[FactorUrgency]; ok {
		w.Urgency = v
	}
	if v, ok := values[FactorImportance]; ok {
		w.Importance = v
	}
	if v, ok := values[FactorEffort]; ok {
		w.Effort = v
	}
	if v, ok := values[FactorDependency]; ok {
		w.Dependency = v
	}
	return w
}
