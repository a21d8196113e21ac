package chart

import (
	"time"

	"github.com/brdg-live/tickerchart/internal/model"
)

// Trailing windows for the selectable time ranges.
const (
	lastHourWindow    = time.Hour
	last24HoursWindow = 24 * time.Hour
)

// FilterByRange returns the points of s whose date falls inside the trailing
// window selected by r, preserving order. RangeAll returns s unchanged, and an
// unrecognized range behaves the same way: an unknown selector must never
// suppress display. now is sampled once by the caller so a single pass is
// internally consistent. The input series is never mutated.
func FilterByRange(s model.Series, r model.TimeRange, now time.Time) model.Series {
	var window time.Duration
	switch r {
	case model.RangeLastHour:
		window = lastHourWindow
	case model.RangeLast24Hours:
		window = last24HoursWindow
	default:
		return s
	}

	start := now.Add(-window)
	out := make(model.Series, 0, len(s))
	for _, p := range s {
		t, ok := model.ParseDate(p.Date)
		if !ok {
			continue
		}
		if !t.Before(start) {
			out = append(out, p)
		}
	}
	return out
}
