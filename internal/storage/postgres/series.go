package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

const seriesCols = `id, exchange_id, ticker, title, category, frequency,
	contract_url, contract_terms_url, fee_type, fee_multiplier, volume, created_at`

func scanSeries(row pgx.Row) (*model.SeriesRow, error) {
	var r model.SeriesRow
	err := row.Scan(
		&r.ID, &r.ExchangeID, &r.Ticker, &r.Title, &r.Category, &r.Frequency,
		&r.ContractURL, &r.ContractTermsURL, &r.FeeType, &r.FeeMultiplier,
		&r.Volume, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetSeriesByTicker returns the series with the given ticker under the given
// exchange, or storage.ErrNotFound.
func (s *Store) GetSeriesByTicker(ctx context.Context, ticker string, exchangeID int64) (*model.SeriesRow, error) {
	query := `SELECT ` + seriesCols + ` FROM series WHERE ticker = $1 AND exchange_id = $2`

	row, err := scanSeries(s.pool.QueryRow(ctx, query, ticker, exchangeID))
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get series by ticker: %w", err)
	}
	return row, nil
}

// CreateSeries inserts a new series. Returns storage.ErrDuplicateKey if
// (ticker, exchange_id) already exists.
func (s *Store) CreateSeries(ctx context.Context, p model.SeriesInsert) (*model.SeriesRow, error) {
	query := `
		INSERT INTO series (
			exchange_id, ticker, title, category, frequency,
			contract_url, contract_terms_url, fee_type, fee_multiplier, volume
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + seriesCols

	row, err := scanSeries(s.pool.QueryRow(ctx, query,
		p.ExchangeID, p.Ticker, p.Title, p.Category, p.Frequency,
		p.ContractURL, p.ContractTermsURL, p.FeeType, p.FeeMultiplier, p.Volume,
	))
	if err != nil {
		return nil, wrapCreateErr("create series", err)
	}
	return row, nil
}
