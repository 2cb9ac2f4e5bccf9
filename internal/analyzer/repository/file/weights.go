package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"smart-task-analyzer/internal/model"
)

// knownTypes are the extensions read with their own codec, matched case-insensitively.
// Anything else is read as JSON.
var knownTypes = map[string]bool{
	"json": true,
	"yaml": true,
	"yml":  true,
	"toml": true,
}

// LoadWeights reads a key to number mapping from the configured file, fills
// missing or null factors from the defaults and normalizes the result.
func (r *implRepository) LoadWeights(ctx context.Context) model.WeightVector {
	if r.path == "" {
		return model.DefaultWeights()
	}

	values, err := r.readWeights()
	if err != nil {
		r.l.Errorf(ctx, "analyzer.repository.file.LoadWeights: %v, using default weights", err)
		return model.DefaultWeights()
	}

	weights, err := model.WeightsFromMap(values).Normalize()
	if err != nil {
		r.l.Warnf(ctx, "analyzer.repository.file.LoadWeights: %v, using default weights", err)
		return model.DefaultWeights()
	}

	return weights
}

func (r *implRepository) readWeights() (map[model.Factor]float64, error) {
	v := viper.New()
	v.SetConfigFile(r.path)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(r.path), "."))
	if !knownTypes[ext] {
		ext = "json"
	}
	v.SetConfigType(ext)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	values := make(map[model.Factor]float64, len(model.Factors))
	for _, f := range model.Factors {
		raw := v.Get(string(f))
		if raw == nil {
			continue
		}
		num, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", f, err)
		}
		values[f] = num
	}

	return values, nil
}
