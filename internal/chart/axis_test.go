package chart

import (
	"testing"

	"github.com/brdg-live/tickerchart/internal/model"
)

func TestAxisDomain(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		min    float64
		max    float64
	}{
		{"empty series", nil, -0.5, 0.5},
		{"single price", []float64{3.0}, 2.95, 3.05},
		{"repeated price", []float64{3.0, 3.0, 3.0}, 2.95, 3.05},
		{"simple range", []float64{1.0, 1.5}, 0.98, 1.53},
		{"unordered prices", []float64{2.0, 0.5, 1.0}, 0.43, 2.08},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := make(model.Series, 0, len(tt.prices))
			for _, p := range tt.prices {
				s = append(s, model.PricePoint{Date: "2024-01-01", Price: p})
			}
			min, max := AxisDomain(s)
			if min != tt.min || max != tt.max {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.min, tt.max, min, max)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{-1.006, -1.01},
		{0.975, 0.98},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.expected {
			t.Errorf("round2(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}
