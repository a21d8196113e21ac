package order

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brdg-live/tickerchart/internal/exchange"
	"github.com/brdg-live/tickerchart/internal/model"
	"github.com/brdg-live/tickerchart/internal/notify"
)

// Fallback failure messages when the exchange error carries no message of
// its own.
const (
	failedBuyMessage  = "Failed to buy ticker."
	failedSellMessage = "Failed to sell ticker."
)

// Submitter forwards validated buy/sell requests to the exchange and reports
// failures to the user. It holds no in-flight lock: overlapping buy and sell
// calls run concurrently.
type Submitter struct {
	exchange exchange.Exchange
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewSubmitter creates a submitter bound to an exchange and a notifier.
func NewSubmitter(ex exchange.Exchange, n notify.Notifier) *Submitter {
	return &Submitter{
		exchange: ex,
		notifier: n,
		logger:   log.With().Str("component", "order_submitter").Logger(),
	}
}

// Submit parses raw as the order amount and issues one request for the given
// side. An unparseable or non-positive amount is a silent no-op: no request
// is sent and nothing is reported. Failures never propagate; the user sees a
// single notification with the exchange's message when it carries one, or the
// side-specific fallback otherwise.
func (s *Submitter) Submit(ctx context.Context, side model.Side, ticker, raw string) {
	amt, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amt) || amt <= 0 {
		return
	}

	var reqErr error
	if side == model.SideSell {
		reqErr = s.exchange.Sell(ctx, ticker, amt)
	} else {
		reqErr = s.exchange.Buy(ctx, ticker, amt)
	}
	if reqErr == nil {
		return
	}

	s.logger.Error().Err(reqErr).
		Str("side", string(side)).
		Str("ticker", ticker).
		Float64("amount", amt).
		Msg("Order rejected")
	s.notifier.Send(failureMessage(reqErr, side))
}

// failureMessage extracts the user-presentable message from an exchange
// rejection, falling back to the side-specific text for any other error.
func failureMessage(err error, side model.Side) string {
	var xerr *exchange.Error
	if errors.As(err, &xerr) && xerr.Message != "" {
		return xerr.Message
	}
	if side == model.SideSell {
		return failedSellMessage
	}
	return failedBuyMessage
}
