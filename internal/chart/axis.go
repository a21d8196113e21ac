package chart

import (
	"math"

	"github.com/brdg-live/tickerchart/internal/model"
)

// Fallback value-axis domain for an empty series.
const (
	emptyAxisMin = -0.5
	emptyAxisMax = 0.5
)

// AxisDomain computes the padded (min, max) domain for the value axis: the
// observed price range widened by 5% on each side. A zero price range is
// substituted with 1 so the domain never degenerates to zero height. Both
// bounds are rounded to 2 decimal places, which may clip an extreme price by
// less than 0.005.
func AxisDomain(s model.Series) (float64, float64) {
	if len(s) == 0 {
		return emptyAxisMin, emptyAxisMax
	}

	rawMin := math.Inf(1)
	rawMax := math.Inf(-1)
	for _, p := range s {
		if p.Price < rawMin {
			rawMin = p.Price
		}
		if p.Price > rawMax {
			rawMax = p.Price
		}
	}

	r := rawMax - rawMin
	if r == 0 {
		r = 1
	}
	pad := r * 0.05
	return round2(rawMin - pad), round2(rawMax + pad)
}

// round2 rounds to 2 decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
