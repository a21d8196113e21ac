package chart

import "github.com/brdg-live/tickerchart/internal/model"

// Trend is the coarse up/down classification of a series.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Display treatment tokens per trend, matching the widget's green/red theme.
const (
	colorGreen = "#22c55e"
	colorRed   = "#ef4444"

	fillGreen = "fillGreen"
	fillRed   = "fillRed"
)

// Classify compares the first and last price of the series. A series with
// fewer than two points has no established downward trend and classifies as
// up; so does a flat series. Only a strictly lower closing price is down.
func Classify(s model.Series) Trend {
	if len(s) < 2 {
		return TrendUp
	}
	if s[len(s)-1].Price < s[0].Price {
		return TrendDown
	}
	return TrendUp
}

// StrokeColor returns the stroke color token for the trend.
func (t Trend) StrokeColor() string {
	if t == TrendDown {
		return colorRed
	}
	return colorGreen
}

// FillID returns the gradient fill token for the trend.
func (t Trend) FillID() string {
	if t == TrendDown {
		return fillRed
	}
	return fillGreen
}
