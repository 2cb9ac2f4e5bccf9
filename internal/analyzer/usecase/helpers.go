package usecase

import (
	"math"
	"strconv"
)

// formatNumber prints the shortest decimal form of v, keeping one decimal
// for whole numbers ("10.0", "5.35").
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
