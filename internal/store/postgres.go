// Package store is a postgres-backed implementation of the exchange
// boundary, used when the board runs against a local holdings store instead
// of the remote order API.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/brdg-live/tickerchart/internal/exchange"
)

// Store represents a database-backed exchange
type Store struct {
	*sql.DB
}

// ConnectionParams holds PostgreSQL connection parameters
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// New creates a new database-backed exchange
func New(params ConnectionParams) (*Store, error) {
	// Create PostgreSQL connection string
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, err
	}

	return &Store{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS holdings (
			ticker TEXT PRIMARY KEY,
			amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// Buy credits the ticker's holdings by amount.
func (s *Store) Buy(ctx context.Context, ticker string, amount float64) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO holdings (ticker, amount, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (ticker)
		DO UPDATE SET
			amount = holdings.amount + EXCLUDED.amount,
			updated_at = NOW()
	`, ticker, amount)

	return err
}

// Sell debits the ticker's holdings by amount. Selling more than is held is
// rejected with a message-carrying error; holdings never go negative.
func (s *Store) Sell(ctx context.Context, ticker string, amount float64) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var held float64
	err = tx.QueryRowContext(ctx, `
		SELECT amount FROM holdings WHERE ticker = $1 FOR UPDATE
	`, ticker).Scan(&held)
	if errors.Is(err, sql.ErrNoRows) {
		return &exchange.Error{Message: fmt.Sprintf("No holdings of %s to sell.", ticker)}
	}
	if err != nil {
		return err
	}

	if held < amount {
		return &exchange.Error{Message: fmt.Sprintf("Insufficient holdings of %s.", ticker)}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE holdings
		SET amount = amount - $1, updated_at = NOW()
		WHERE ticker = $2
	`, amount, ticker)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Holdings returns the held amount for the ticker. A ticker that has never
// traded is reported as unknown.
func (s *Store) Holdings(ctx context.Context, ticker string) (exchange.Holdings, error) {
	var amount float64
	err := s.QueryRowContext(ctx, `
		SELECT amount FROM holdings WHERE ticker = $1
	`, ticker).Scan(&amount)

	if errors.Is(err, sql.ErrNoRows) {
		return exchange.Holdings{}, nil
	}
	if err != nil {
		return exchange.Holdings{}, err
	}

	return exchange.Holdings{Amount: amount, Known: true}, nil
}
