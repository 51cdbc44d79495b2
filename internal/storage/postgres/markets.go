package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rickgao/kalshi-sync/internal/model"
)

const marketCols = `id, event_id, ticker, market_type, title, subtitle,
	yes_sub_title, no_sub_title, status, result,
	open_time, close_time, expiration_time, created_time,
	can_close_early, tick_size, strike_type, floor_strike, cap_strike, created_at`

func scanMarket(row pgx.Row) (*model.MarketRow, error) {
	var r model.MarketRow
	err := row.Scan(
		&r.ID, &r.EventID, &r.Ticker, &r.MarketType, &r.Title, &r.Subtitle,
		&r.YesSubTitle, &r.NoSubTitle, &r.Status, &r.Result,
		&r.OpenTime, &r.CloseTime, &r.ExpirationTime, &r.CreatedTime,
		&r.CanCloseEarly, &r.TickSize, &r.StrikeType, &r.FloorStrike, &r.CapStrike,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetMarketsByTickers returns the markets whose tickers appear in the set.
// Tickers with no row are simply absent from the result.
func (s *Store) GetMarketsByTickers(ctx context.Context, tickers []string) ([]model.MarketRow, error) {
	if len(tickers) == 0 {
		return nil, nil
	}

	query := `SELECT ` + marketCols + ` FROM markets WHERE ticker = ANY($1)`

	rows, err := s.pool.Query(ctx, query, tickers)
	if err != nil {
		return nil, fmt.Errorf("get markets by tickers: %w", err)
	}
	defer rows.Close()

	out := make([]model.MarketRow, 0, len(tickers))
	for rows.Next() {
		m, err := scanMarket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan market: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get markets by tickers: %w", err)
	}
	return out, nil
}

// CreateMarkets inserts the given payloads in one round-trip and returns the
// created rows with their generated IDs. Returns storage.ErrDuplicateKey if
// any ticker already exists; no rows from this call are kept in that case,
// so the caller re-resolves and retries the remaining delta.
func (s *Store) CreateMarkets(ctx context.Context, payloads []model.MarketInsert) ([]model.MarketRow, error) {
	if len(payloads) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO markets (
			event_id, ticker, market_type, title, subtitle,
			yes_sub_title, no_sub_title, status, result,
			open_time, close_time, expiration_time, created_time,
			can_close_early, tick_size, strike_type, floor_strike, cap_strike
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + marketCols

	batch := &pgx.Batch{}
	for _, p := range payloads {
		batch.Queue(query,
			p.EventID, p.Ticker, p.MarketType, p.Title, p.Subtitle,
			p.YesSubTitle, p.NoSubTitle, p.Status, p.Result,
			p.OpenTime, p.CloseTime, p.ExpirationTime, p.CreatedTime,
			p.CanCloseEarly, p.TickSize, p.StrikeType, p.FloorStrike, p.CapStrike,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	out := make([]model.MarketRow, 0, len(payloads))
	for range payloads {
		m, err := scanMarket(results.QueryRow())
		if err != nil {
			return nil, wrapCreateErr("create markets", err)
		}
		out = append(out, *m)
	}
	return out, nil
}
