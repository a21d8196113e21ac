// Package notify is the fire-and-forget channel for user-facing messages.
package notify

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notifier delivers one human-readable message to the user. No return value,
// no acknowledgment.
type Notifier interface {
	Send(msg string)
}

// Stdout logs messages instead of delivering them anywhere.
type Stdout struct {
	logger zerolog.Logger
}

func NewStdout() *Stdout {
	return &Stdout{logger: log.With().Str("component", "notifier").Logger()}
}

func (s *Stdout) Send(msg string) {
	s.logger.Info().Msg(msg)
}
