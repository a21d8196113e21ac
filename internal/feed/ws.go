package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brdg-live/tickerchart/internal/model"
)

// Frame channels pushed by the feed server.
const (
	channelPrices   = "prices"
	channelHoldings = "holdings"
)

// WS subscribes to the feed server over a websocket and forwards price and
// holdings frames as snapshots. The connection is re-dialed with a delay on
// any read error until the context is cancelled.
type WS struct {
	URL    string
	Ticker string

	Dialer       *websocket.Dialer
	RedialDelay  time.Duration
	PingInterval time.Duration

	logger zerolog.Logger
}

type subscribeOp struct {
	Op     string `json:"op"`
	Ticker string `json:"ticker"`
}

type frame struct {
	Channel  string             `json:"channel"`
	Ticker   string             `json:"ticker"`
	Series   []model.PricePoint `json:"series,omitempty"`
	Holdings *float64           `json:"holdings,omitempty"`
}

// Start dials the feed and returns the snapshot channels. Both channels are
// closed once ctx is cancelled.
func (w *WS) Start(ctx context.Context) (<-chan model.Series, <-chan HoldingsUpdate, error) {
	if w.Dialer == nil {
		w.Dialer = websocket.DefaultDialer
	}
	if w.RedialDelay == 0 {
		w.RedialDelay = time.Second
	}
	if w.PingInterval == 0 {
		w.PingInterval = 20 * time.Second
	}
	w.logger = log.With().Str("component", "feed").Str("ticker", w.Ticker).Logger()

	series := make(chan model.Series)
	holdings := make(chan HoldingsUpdate)

	go func() {
		defer close(series)
		defer close(holdings)
		for {
			if ctx.Err() != nil {
				return
			}
			w.stream(ctx, series, holdings)
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.RedialDelay):
			}
		}
	}()

	return series, holdings, nil
}

// stream runs one connection until it breaks.
func (w *WS) stream(ctx context.Context, series chan<- model.Series, holdings chan<- HoldingsUpdate) {
	conn, _, err := w.Dialer.DialContext(ctx, w.URL, nil)
	if err != nil {
		w.logger.Error().Err(err).Msg("Feed dial failed")
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(subscribeOp{Op: "subscribe", Ticker: w.Ticker}); err != nil {
		w.logger.Error().Err(err).Msg("Feed subscribe failed")
		return
	}

	// Keepalive pings; the server drops idle connections.
	stopPing := make(chan struct{})
	defer close(stopPing)
	go func() {
		t := time.NewTicker(w.PingInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				// Unblock the read loop.
				_ = conn.Close()
				return
			case <-stopPing:
				return
			case <-t.C:
				_ = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Error().Err(err).Msg("Feed read failed")
			}
			return
		}

		var f frame
		if err := json.Unmarshal(msg, &f); err != nil {
			w.logger.Warn().Err(err).Msg("Skipping malformed frame")
			continue
		}
		if f.Ticker != "" && f.Ticker != w.Ticker {
			continue
		}

		switch f.Channel {
		case channelPrices:
			select {
			case <-ctx.Done():
				return
			case series <- model.Series(f.Series):
			}
		case channelHoldings:
			u := HoldingsUpdate{Ticker: w.Ticker}
			if f.Holdings != nil {
				u.Amount = *f.Holdings
				u.Known = true
			}
			select {
			case <-ctx.Done():
				return
			case holdings <- u:
			}
		}
	}
}
