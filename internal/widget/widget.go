// Package widget binds the reactive feeds to the chart transforms and the
// order flow. Board is the logic behind one ticker chart card.
package widget

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brdg-live/tickerchart/internal/chart"
	"github.com/brdg-live/tickerchart/internal/exchange"
	"github.com/brdg-live/tickerchart/internal/feed"
	"github.com/brdg-live/tickerchart/internal/model"
	"github.com/brdg-live/tickerchart/internal/notify"
	"github.com/brdg-live/tickerchart/internal/order"
)

// Options are the display parameters supplied by the caller. They are
// configuration, not validated beyond use.
type Options struct {
	Ticker           string
	DisplayLabel     string
	TeamMembers      string
	TeamImages       []string
	TimeRange        model.TimeRange
	ShowDeltaMarkers bool
}

// View is one display-ready rendering of the board: the chart render model
// plus the card header and footer values.
type View struct {
	chart.RenderModel

	Ticker       string
	DisplayLabel string
	TeamMembers  string
	TeamImages   []string

	// PriceLabel is the latest filtered price formatted to 3 decimals with
	// the token label, empty when nothing is visible.
	PriceLabel string

	// HoldingsDisplay is the held amount rounded to 2 decimals; unknown
	// holdings display as 0.
	HoldingsDisplay float64
}

// Board owns the amount input buffer and the latest snapshots, and derives a
// View on demand. All methods are safe for concurrent use.
type Board struct {
	opts      Options
	input     *order.AmountInput
	submitter *order.Submitter
	logger    zerolog.Logger

	mu       sync.Mutex
	series   model.Series
	holdings exchange.Holdings
	rng      model.TimeRange
	markers  bool
}

// New creates a board for the given ticker bound to an exchange and a
// notifier.
func New(opts Options, ex exchange.Exchange, n notify.Notifier) *Board {
	if opts.TimeRange == "" {
		opts.TimeRange = model.RangeAll
	}
	return &Board{
		opts:      opts,
		input:     &order.AmountInput{},
		submitter: order.NewSubmitter(ex, n),
		logger:    log.With().Str("component", "board").Str("ticker", opts.Ticker).Logger(),
		rng:       opts.TimeRange,
		markers:   opts.ShowDeltaMarkers,
	}
}

// Run consumes feed snapshots until the context is cancelled or both
// channels close. Each delivery replaces the previous snapshot.
func (b *Board) Run(ctx context.Context, src feed.Source) error {
	series, holdings, err := src.Start(ctx)
	if err != nil {
		return err
	}
	for series != nil || holdings != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-series:
			if !ok {
				series = nil
				continue
			}
			b.ApplySeries(s)
		case h, ok := <-holdings:
			if !ok {
				holdings = nil
				continue
			}
			b.ApplyHoldings(h)
		}
	}
	return nil
}

// ApplySeries replaces the current series snapshot.
func (b *Board) ApplySeries(s model.Series) {
	b.mu.Lock()
	b.series = s
	b.mu.Unlock()
	b.logger.Debug().Int("points", len(s)).Msg("Series snapshot applied")
}

// ApplyHoldings replaces the current holdings value.
func (b *Board) ApplyHoldings(u feed.HoldingsUpdate) {
	b.mu.Lock()
	b.holdings = exchange.Holdings{Amount: u.Amount, Known: u.Known}
	b.mu.Unlock()
}

// SetTimeRange switches the trailing window selector.
func (b *Board) SetTimeRange(r model.TimeRange) {
	b.mu.Lock()
	b.rng = r
	b.mu.Unlock()
}

// SetShowDeltaMarkers toggles the delta marker layer.
func (b *Board) SetShowDeltaMarkers(show bool) {
	b.mu.Lock()
	b.markers = show
	b.mu.Unlock()
}

// View derives the current display state. The wall clock is sampled once so
// the whole derivation is internally consistent.
func (b *Board) View() View {
	return b.viewAt(time.Now())
}

func (b *Board) viewAt(now time.Time) View {
	b.mu.Lock()
	series, holdings, rng, markers := b.series, b.holdings, b.rng, b.markers
	b.mu.Unlock()

	rm := chart.Build(series, rng, markers, now)

	v := View{
		RenderModel:  rm,
		Ticker:       b.opts.Ticker,
		DisplayLabel: b.opts.DisplayLabel,
		TeamMembers:  b.opts.TeamMembers,
		TeamImages:   b.opts.TeamImages,
	}
	if len(rm.Series) > 0 {
		v.PriceLabel = fmt.Sprintf("%.3f %s", rm.Series[len(rm.Series)-1].Price, b.opts.DisplayLabel)
	}
	if holdings.Known {
		v.HoldingsDisplay = math.Round(holdings.Amount*100) / 100
	}
	return v
}

// SetAmountText applies one edit to the amount input buffer.
func (b *Board) SetAmountText(text string) bool {
	return b.input.SetText(text)
}

// CommitAmount normalizes the buffer, as on input blur.
func (b *Board) CommitAmount() {
	b.input.Commit()
}

// Amount returns the current input buffer contents.
func (b *Board) Amount() string {
	return b.input.Value()
}

// Buy submits a buy order for the buffered amount. The buffer is not cleared
// afterwards, so the same order can be repeated.
func (b *Board) Buy(ctx context.Context) {
	b.submitter.Submit(ctx, model.SideBuy, b.opts.Ticker, b.input.Value())
}

// Sell submits a sell order for the buffered amount.
func (b *Board) Sell(ctx context.Context) {
	b.submitter.Submit(ctx, model.SideSell, b.opts.Ticker, b.input.Value())
}
