package chart

import (
	"testing"

	"github.com/brdg-live/tickerchart/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		expected Trend
	}{
		{"empty series", nil, TrendUp},
		{"single point", []float64{1.0}, TrendUp},
		{"flat series", []float64{1.0, 2.0, 1.0}, TrendUp},
		{"rising", []float64{1.0, 0.5, 1.5}, TrendUp},
		{"falling", []float64{1.5, 2.0, 1.0}, TrendDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := make(model.Series, 0, len(tt.prices))
			for _, p := range tt.prices {
				s = append(s, model.PricePoint{Date: "2024-01-01", Price: p})
			}
			if got := Classify(s); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTrendTokens(t *testing.T) {
	if TrendUp.StrokeColor() != "#22c55e" || TrendUp.FillID() != "fillGreen" {
		t.Errorf("unexpected up tokens: %s %s", TrendUp.StrokeColor(), TrendUp.FillID())
	}
	if TrendDown.StrokeColor() != "#ef4444" || TrendDown.FillID() != "fillRed" {
		t.Errorf("unexpected down tokens: %s %s", TrendDown.StrokeColor(), TrendDown.FillID())
	}
}
