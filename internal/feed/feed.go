// Package feed delivers reactive snapshots of the price series and holdings
// for a ticker. Each series emission is a full replacement snapshot, not a
// diff.
package feed

import (
	"context"

	"github.com/brdg-live/tickerchart/internal/model"
)

// HoldingsUpdate is one push of the holdings value. Known is false when the
// store reports the ticker as unknown; the board displays that as zero.
type HoldingsUpdate struct {
	Ticker string
	Amount float64
	Known  bool
}

// Source is a reactive feed the board subscribes to. Start returns the two
// event channels; both are closed when the source stops.
type Source interface {
	Start(ctx context.Context) (<-chan model.Series, <-chan HoldingsUpdate, error)
}

// Static replays fixed snapshots and then closes its channels. It backs the
// demo binary and tests.
type Static struct {
	Series   []model.Series
	Holdings []HoldingsUpdate
}

func (s *Static) Start(ctx context.Context) (<-chan model.Series, <-chan HoldingsUpdate, error) {
	series := make(chan model.Series)
	holdings := make(chan HoldingsUpdate)
	go func() {
		defer close(series)
		for _, snap := range s.Series {
			select {
			case <-ctx.Done():
				return
			case series <- snap:
			}
		}
	}()
	go func() {
		defer close(holdings)
		for _, h := range s.Holdings {
			select {
			case <-ctx.Done():
				return
			case holdings <- h:
			}
		}
	}()
	return series, holdings, nil
}
