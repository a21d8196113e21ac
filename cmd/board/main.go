package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brdg-live/tickerchart/internal/config"
	"github.com/brdg-live/tickerchart/internal/exchange"
	"github.com/brdg-live/tickerchart/internal/exchange/httpapi"
	"github.com/brdg-live/tickerchart/internal/feed"
	"github.com/brdg-live/tickerchart/internal/model"
	"github.com/brdg-live/tickerchart/internal/notify"
	"github.com/brdg-live/tickerchart/internal/store"
	"github.com/brdg-live/tickerchart/internal/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ex := buildExchange(cfg)
	notifier := buildNotifier(cfg)

	board := widget.New(widget.Options{
		Ticker:           cfg.Ticker,
		DisplayLabel:     cfg.DisplayLabel,
		TeamMembers:      cfg.TeamMembers,
		TeamImages:       cfg.TeamImages,
		TimeRange:        model.TimeRange(cfg.TimeRange),
		ShowDeltaMarkers: cfg.ShowDeltaMarkers,
	}, ex, notifier)

	src := buildSource(cfg)
	go func() {
		if err := board.Run(ctx, src); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("Feed stopped")
		}
	}()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			return
		case <-ticker.C:
			v := board.View()
			log.Info().
				Str("trend", string(v.Trend)).
				Float64("axis_min", v.AxisMin).
				Float64("axis_max", v.AxisMax).
				Int("points", len(v.Series)).
				Int("markers", len(v.Markers)).
				Str("price", v.PriceLabel).
				Float64("holdings", v.HoldingsDisplay).
				Msg("Board state")
		}
	}
}

// buildExchange prefers the postgres store when configured, otherwise the
// remote order API.
func buildExchange(cfg *config.Config) exchange.Exchange {
	if cfg.DBHost != "" {
		st, err := store.New(store.ConnectionParams{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to postgres")
		}
		return st
	}
	if cfg.ExchangeBaseURL == "" {
		log.Fatal().Msg("Either DB_HOST or EXCHANGE_BASE_URL must be set")
	}
	return httpapi.NewClient(httpapi.ClientOptions{
		BaseURL:        cfg.ExchangeBaseURL,
		APIKey:         cfg.ExchangeAPIKey,
		RequestTimeout: cfg.RequestTimeout,
	})
}

func buildNotifier(cfg *config.Config) notify.Notifier {
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create telegram notifier")
		}
		return tg
	}
	return notify.NewStdout()
}

func buildSource(cfg *config.Config) feed.Source {
	if cfg.FeedURL != "" {
		return &feed.WS{URL: cfg.FeedURL, Ticker: cfg.Ticker}
	}
	log.Warn().Msg("FEED_URL not set, replaying a demo series")
	now := time.Now()
	return &feed.Static{
		Series: []model.Series{{
			{Date: now.Add(-2 * time.Hour).Format(time.RFC3339), Price: 1.0},
			{Date: now.Add(-time.Hour).Format(time.RFC3339), Price: 1.2, Synthetic: true},
			{Date: now.Format(time.RFC3339), Price: 1.5},
		}},
		Holdings: []feed.HoldingsUpdate{{Ticker: cfg.Ticker, Amount: 10, Known: true}},
	}
}
