package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rickgao/kalshi-sync/internal/model"
)

// InsertMarketSnapshots appends price observations in one round-trip.
// Snapshots are a pure history log; they carry no unique key and are never
// updated after insertion.
func (s *Store) InsertMarketSnapshots(ctx context.Context, payloads []model.MarketSnapshotInsert) (int, error) {
	if len(payloads) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO market_snapshots (
			market_id,
			yes_bid, yes_bid_dollars, yes_ask, yes_ask_dollars,
			no_bid, no_bid_dollars, no_ask, no_ask_dollars,
			last_price, last_price_dollars,
			volume, volume_24h, open_interest, liquidity, liquidity_dollars
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	batch := &pgx.Batch{}
	for _, p := range payloads {
		batch.Queue(query,
			p.MarketID,
			p.YesBid, p.YesBidDollars, p.YesAsk, p.YesAskDollars,
			p.NoBid, p.NoBidDollars, p.NoAsk, p.NoAskDollars,
			p.LastPrice, p.LastPriceDollars,
			p.Volume, p.Volume24h, p.OpenInterest, p.Liquidity, p.LiquidityDollars,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range payloads {
		if _, err := results.Exec(); err != nil {
			return inserted, fmt.Errorf("insert market snapshots: %w", err)
		}
		inserted++
	}
	return inserted, nil
}
