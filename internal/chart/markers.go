package chart

import "github.com/brdg-live/tickerchart/internal/model"

// DeltaMarkers derives one directional marker per adjacent pair of real
// observations whose prices differ. Pairs touching a synthetic point on
// either side are skipped, as are zero deltas; the first point has no
// predecessor and never produces a marker. The result is an annotation layer
// only and leaves the series untouched.
func DeltaMarkers(s model.Series, show bool) []model.DeltaMarker {
	if !show {
		return nil
	}

	var markers []model.DeltaMarker
	for i := 1; i < len(s); i++ {
		prev, curr := s[i-1], s[i]
		if prev.Synthetic || curr.Synthetic {
			continue
		}
		delta := curr.Price - prev.Price
		if delta == 0 {
			continue
		}
		dir := model.DirectionUp
		if delta < 0 {
			dir = model.DirectionDown
		}
		markers = append(markers, model.DeltaMarker{Date: curr.Date, Direction: dir})
	}
	return markers
}
