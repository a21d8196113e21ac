package widget

import (
	"context"
	"testing"
	"time"

	"github.com/brdg-live/tickerchart/internal/chart"
	"github.com/brdg-live/tickerchart/internal/exchange"
	"github.com/brdg-live/tickerchart/internal/feed"
	"github.com/brdg-live/tickerchart/internal/model"
)

type orderCall struct {
	side   model.Side
	ticker string
	amount float64
}

type fakeExchange struct {
	calls []orderCall
	err   error
}

func (f *fakeExchange) Buy(ctx context.Context, ticker string, amount float64) error {
	f.calls = append(f.calls, orderCall{model.SideBuy, ticker, amount})
	return f.err
}

func (f *fakeExchange) Sell(ctx context.Context, ticker string, amount float64) error {
	f.calls = append(f.calls, orderCall{model.SideSell, ticker, amount})
	return f.err
}

func (f *fakeExchange) Holdings(ctx context.Context, ticker string) (exchange.Holdings, error) {
	return exchange.Holdings{}, nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Send(msg string) {
	f.messages = append(f.messages, msg)
}

func newTestBoard(opts Options) (*Board, *fakeExchange, *fakeNotifier) {
	ex := &fakeExchange{}
	n := &fakeNotifier{}
	return New(opts, ex, n), ex, n
}

func TestBoard_ViewRisingSeries(t *testing.T) {
	b, _, _ := newTestBoard(Options{
		Ticker:           "BRDG",
		DisplayLabel:     "BRDG",
		ShowDeltaMarkers: true,
	})
	b.ApplySeries(model.Series{
		{Date: "2024-01-01", Price: 1.0},
		{Date: "2024-01-02", Price: 1.5},
	})

	v := b.viewAt(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))

	if v.Trend != chart.TrendUp {
		t.Errorf("expected up trend, got %s", v.Trend)
	}
	if v.AxisMin != 0.98 || v.AxisMax != 1.53 {
		t.Errorf("expected domain (0.98, 1.53), got (%v, %v)", v.AxisMin, v.AxisMax)
	}
	if len(v.Markers) != 1 || v.Markers[0].Date != "2024-01-02" || v.Markers[0].Direction != model.DirectionUp {
		t.Errorf("unexpected markers: %v", v.Markers)
	}
	if v.PriceLabel != "1.500 BRDG" {
		t.Errorf("unexpected price label: %q", v.PriceLabel)
	}
}

func TestBoard_HoldingsDisplay(t *testing.T) {
	b, _, _ := newTestBoard(Options{Ticker: "BRDG"})

	if v := b.View(); v.HoldingsDisplay != 0 {
		t.Errorf("unknown holdings must display as 0, got %v", v.HoldingsDisplay)
	}

	b.ApplyHoldings(feed.HoldingsUpdate{Ticker: "BRDG", Amount: 12.345, Known: true})
	if v := b.View(); v.HoldingsDisplay != 12.35 {
		t.Errorf("expected holdings rounded to 12.35, got %v", v.HoldingsDisplay)
	}
}

func TestBoard_BuyUsesBufferedAmount(t *testing.T) {
	b, ex, _ := newTestBoard(Options{Ticker: "BRDG"})
	b.SetAmountText("10.50")

	b.Buy(context.Background())

	if len(ex.calls) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ex.calls))
	}
	if ex.calls[0] != (orderCall{model.SideBuy, "BRDG", 10.5}) {
		t.Errorf("unexpected call: %+v", ex.calls[0])
	}
}

func TestBoard_BufferSurvivesSubmission(t *testing.T) {
	b, _, _ := newTestBoard(Options{Ticker: "BRDG"})
	b.SetAmountText("2.00")

	b.Buy(context.Background())
	b.Sell(context.Background())

	if got := b.Amount(); got != "2.00" {
		t.Errorf("buffer must be preserved after submission, got %q", got)
	}
}

func TestBoard_FailureReportedOnce(t *testing.T) {
	b, ex, n := newTestBoard(Options{Ticker: "BRDG"})
	ex.err = &exchange.Error{Message: "Market is closed."}
	b.SetAmountText("5")

	b.Sell(context.Background())

	if len(n.messages) != 1 || n.messages[0] != "Market is closed." {
		t.Errorf("expected single exchange message, got %v", n.messages)
	}
	if got := b.Amount(); got != "5" {
		t.Errorf("buffer must be preserved after failure, got %q", got)
	}
}

func TestBoard_RunConsumesFeed(t *testing.T) {
	b, _, _ := newTestBoard(Options{Ticker: "BRDG"})
	src := &feed.Static{
		Series: []model.Series{
			{{Date: "2024-01-01", Price: 1.0}},
			{{Date: "2024-01-01", Price: 1.0}, {Date: "2024-01-02", Price: 1.5}},
		},
		Holdings: []feed.HoldingsUpdate{{Ticker: "BRDG", Amount: 3, Known: true}},
	}

	if err := b.Run(context.Background(), src); err != nil {
		t.Fatalf("run: %v", err)
	}

	v := b.View()
	if len(v.Series) != 2 {
		t.Errorf("expected final snapshot with 2 points, got %d", len(v.Series))
	}
	if v.HoldingsDisplay != 3 {
		t.Errorf("expected holdings 3, got %v", v.HoldingsDisplay)
	}
}

func TestBoard_UnknownRangeShowsEverything(t *testing.T) {
	b, _, _ := newTestBoard(Options{Ticker: "BRDG", TimeRange: model.TimeRange("fortnight")})
	b.ApplySeries(model.Series{{Date: "2020-01-01", Price: 1.0}})

	if v := b.View(); len(v.Series) != 1 {
		t.Errorf("unknown range must not suppress display, got %d points", len(v.Series))
	}
}
