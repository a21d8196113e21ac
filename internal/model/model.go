package model

// PricePoint represents a single observed or interpolated price sample.
type PricePoint struct {
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

// Series is a chronologically ordered sequence of price points. Ordering is an
// input precondition; the transforms never re-sort it.
type Series []PricePoint

// TimeRange selects a trailing window relative to the evaluation instant.
type TimeRange string

const (
	RangeAll         TimeRange = "all"
	RangeLastHour    TimeRange = "1hr"
	RangeLast24Hours TimeRange = "24hrs"
)

// Direction of a price move between two adjacent real observations.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// DeltaMarker annotates the series with the direction of the price move that
// ended at Date.
type DeltaMarker struct {
	Date      string    `json:"date"`
	Direction Direction `json:"direction"`
}

// Side of an order request.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)
