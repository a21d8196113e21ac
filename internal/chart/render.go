package chart

import (
	"time"

	"github.com/brdg-live/tickerchart/internal/model"
)

// RenderModel is the display-ready derivation of one series snapshot. It is
// ephemeral and recomputed on every input change.
type RenderModel struct {
	Series      model.Series
	Trend       Trend
	StrokeColor string
	FillID      string
	AxisMin     float64
	AxisMax     float64
	Markers     []model.DeltaMarker
}

// Build runs the full transform pipeline over one raw series snapshot:
// time-window filtering, then trend, axis domain and delta markers over the
// filtered result. now is sampled once by the caller.
func Build(raw model.Series, r model.TimeRange, showMarkers bool, now time.Time) RenderModel {
	filtered := FilterByRange(raw, r, now)
	trend := Classify(filtered)
	axisMin, axisMax := AxisDomain(filtered)

	return RenderModel{
		Series:      filtered,
		Trend:       trend,
		StrokeColor: trend.StrokeColor(),
		FillID:      trend.FillID(),
		AxisMin:     axisMin,
		AxisMax:     axisMax,
		Markers:     DeltaMarkers(filtered, showMarkers),
	}
}

// TickLabel formats an axis tick for the given range: clock time for the
// short trailing windows, month and day otherwise. Unparseable dates are
// returned as-is.
func TickLabel(date string, r model.TimeRange) string {
	t, ok := model.ParseDate(date)
	if !ok {
		return date
	}
	switch r {
	case model.RangeLastHour, model.RangeLast24Hours:
		return t.Format("15:04:05")
	default:
		return t.Format("Jan 2")
	}
}
