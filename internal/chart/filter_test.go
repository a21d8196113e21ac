package chart

import (
	"testing"
	"time"

	"github.com/brdg-live/tickerchart/internal/model"
)

var filterNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func seriesAt(offsets ...time.Duration) model.Series {
	s := make(model.Series, 0, len(offsets))
	for i, off := range offsets {
		s = append(s, model.PricePoint{
			Date:  filterNow.Add(off).Format(time.RFC3339),
			Price: float64(i + 1),
		})
	}
	return s
}

func TestFilterByRange_AllIsIdentity(t *testing.T) {
	s := seriesAt(-48*time.Hour, -2*time.Hour, -time.Minute)
	got := FilterByRange(s, model.RangeAll, filterNow)
	if len(got) != len(s) {
		t.Fatalf("expected %d points, got %d", len(s), len(got))
	}
	for i := range s {
		if got[i] != s[i] {
			t.Errorf("point %d changed: %+v != %+v", i, got[i], s[i])
		}
	}
}

func TestFilterByRange_Windows(t *testing.T) {
	s := seriesAt(-48*time.Hour, -25*time.Hour, -2*time.Hour, -30*time.Minute, 0)

	tests := []struct {
		name  string
		r     model.TimeRange
		count int
	}{
		{"last hour", model.RangeLastHour, 2},
		{"last 24 hours", model.RangeLast24Hours, 3},
		{"all", model.RangeAll, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByRange(s, tt.r, filterNow)
			if len(got) != tt.count {
				t.Fatalf("expected %d points, got %d", tt.count, len(got))
			}
			// The result must be a contiguous suffix of the input.
			for i := range got {
				if got[i] != s[len(s)-len(got)+i] {
					t.Errorf("point %d is not the matching suffix point", i)
				}
			}
		})
	}
}

func TestFilterByRange_BoundaryIsInclusive(t *testing.T) {
	s := seriesAt(-time.Hour)
	got := FilterByRange(s, model.RangeLastHour, filterNow)
	if len(got) != 1 {
		t.Fatalf("point exactly at the window edge should be kept, got %d points", len(got))
	}
}

func TestFilterByRange_UnknownRangeFailsOpen(t *testing.T) {
	s := seriesAt(-48*time.Hour, -time.Minute)
	got := FilterByRange(s, model.TimeRange("7days"), filterNow)
	if len(got) != len(s) {
		t.Fatalf("unknown range must behave like all: expected %d points, got %d", len(s), len(got))
	}
}

func TestFilterByRange_DoesNotMutateInput(t *testing.T) {
	s := seriesAt(-48*time.Hour, -time.Minute)
	orig := make(model.Series, len(s))
	copy(orig, s)

	FilterByRange(s, model.RangeLastHour, filterNow)

	for i := range s {
		if s[i] != orig[i] {
			t.Fatalf("input series mutated at %d", i)
		}
	}
}
