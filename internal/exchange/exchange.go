// Package exchange defines the mutation boundary the board submits orders
// through. Implementations live in httpapi (remote API) and store (postgres).
package exchange

import "context"

// Exchange executes buy/sell mutations and answers holdings queries for a
// ticker. Buy and Sell return nil on success; a rejection that carries a
// user-presentable reason is returned as *Error.
type Exchange interface {
	Buy(ctx context.Context, ticker string, amount float64) error
	Sell(ctx context.Context, ticker string, amount float64) error
	Holdings(ctx context.Context, ticker string) (Holdings, error)
}

// Holdings is a holdings quantity that may be unknown for the ticker.
// Unknown holdings display as zero.
type Holdings struct {
	Amount float64
	Known  bool
}

// Error is a mutation rejection with a message meant for the user. Errors of
// any other type surface as a generic side-specific failure instead.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
