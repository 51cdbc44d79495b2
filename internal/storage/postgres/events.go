package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

const eventCols = `id, exchange_id, series_id, ticker, title, sub_title, category,
	collateral_return_type, mutually_exclusive, strike_date, strike_period, created_at`

func scanEvent(row pgx.Row) (*model.EventRow, error) {
	var r model.EventRow
	err := row.Scan(
		&r.ID, &r.ExchangeID, &r.SeriesID, &r.Ticker, &r.Title, &r.SubTitle,
		&r.Category, &r.CollateralReturnType, &r.MutuallyExclusive,
		&r.StrikeDate, &r.StrikePeriod, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetEventByTicker returns the event with the given ticker, or
// storage.ErrNotFound. Event tickers are globally unique.
func (s *Store) GetEventByTicker(ctx context.Context, ticker string) (*model.EventRow, error) {
	query := `SELECT ` + eventCols + ` FROM events WHERE ticker = $1`

	row, err := scanEvent(s.pool.QueryRow(ctx, query, ticker))
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get event by ticker: %w", err)
	}
	return row, nil
}

// CreateEvent inserts a new event. Returns storage.ErrDuplicateKey if the
// ticker already exists.
func (s *Store) CreateEvent(ctx context.Context, p model.EventInsert) (*model.EventRow, error) {
	query := `
		INSERT INTO events (
			exchange_id, series_id, ticker, title, sub_title, category,
			collateral_return_type, mutually_exclusive, strike_date, strike_period
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventCols

	row, err := scanEvent(s.pool.QueryRow(ctx, query,
		p.ExchangeID, p.SeriesID, p.Ticker, p.Title, p.SubTitle, p.Category,
		p.CollateralReturnType, p.MutuallyExclusive, p.StrikeDate, p.StrikePeriod,
	))
	if err != nil {
		return nil, wrapCreateErr("create event", err)
	}
	return row, nil
}
