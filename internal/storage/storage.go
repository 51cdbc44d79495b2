package storage

import (
	"context"
	"errors"

	"github.com/rickgao/kalshi-sync/internal/model"
)

// Sentinel errors returned by Store implementations.
var (
	// ErrNotFound is returned by single-row lookups when no row matches.
	// It is an expected outcome, not a failure.
	ErrNotFound = errors.New("storage: not found")

	// ErrDuplicateKey is returned by creates that violate a unique
	// constraint. Callers absorb it by re-resolving the existing row.
	ErrDuplicateKey = errors.New("storage: duplicate key")
)

// Store is the relational persistence contract the sync pipeline depends on.
//
// Lookups return ErrNotFound as a distinguishable miss. Creates return the
// persisted rows including store-generated IDs, and ErrDuplicateKey on
// unique-constraint conflicts. Every call is its own atomic store operation;
// there is no transaction spanning multiple resolutions.
type Store interface {
	GetExchangeBySlug(ctx context.Context, slug string) (*model.ExchangeRow, error)
	CreateExchange(ctx context.Context, p model.ExchangeInsert) (*model.ExchangeRow, error)

	GetSeriesByTicker(ctx context.Context, ticker string, exchangeID int64) (*model.SeriesRow, error)
	CreateSeries(ctx context.Context, p model.SeriesInsert) (*model.SeriesRow, error)

	GetEventByTicker(ctx context.Context, ticker string) (*model.EventRow, error)
	CreateEvent(ctx context.Context, p model.EventInsert) (*model.EventRow, error)

	// GetMarketsByTickers returns the rows whose tickers appear in the set.
	// Missing tickers are simply absent from the result, never an error.
	GetMarketsByTickers(ctx context.Context, tickers []string) ([]model.MarketRow, error)
	CreateMarkets(ctx context.Context, payloads []model.MarketInsert) ([]model.MarketRow, error)

	// InsertMarketSnapshots appends observations and returns the inserted
	// count. Snapshots are write-only from the pipeline's point of view.
	InsertMarketSnapshots(ctx context.Context, payloads []model.MarketSnapshotInsert) (int, error)
}
