package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/rickgao/kalshi-sync/internal/api"
	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

// marketEntry pairs a provider market with the resolved event it belongs to.
type marketEntry struct {
	eventID int64
	market  *api.APIMarket
}

// resolveMarkets bulk-resolves every entry's market against the store and
// inserts only the missing delta. The lookup and the insert are both chunked
// by the configured batch sizes. When a ticker appears under more than one
// event, the first occurrence decides the insert payload.
//
// Returns the complete ticker-to-row mapping for all entries plus the number
// of rows actually created.
func (s *Syncer) resolveMarkets(ctx context.Context, entries []marketEntry) (map[string]model.MarketRow, int, error) {
	byTicker := make(map[string]model.MarketRow)
	if len(entries) == 0 {
		return byTicker, 0, nil
	}

	seen := make(map[string]struct{}, len(entries))
	tickers := make([]string, 0, len(entries))
	for _, e := range entries {
		t := e.market.Ticker
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tickers = append(tickers, t)
	}

	for _, part := range chunk(tickers, s.cfg.MarketGetBatchSize) {
		rows, err := s.store.GetMarketsByTickers(ctx, part)
		if err != nil {
			return nil, 0, fmt.Errorf("lookup markets: %w", err)
		}
		for _, r := range rows {
			byTicker[r.Ticker] = r
		}
	}

	queued := make(map[string]struct{})
	var payloads []model.MarketInsert
	for _, e := range entries {
		t := e.market.Ticker
		if t == "" {
			continue
		}
		if _, ok := byTicker[t]; ok {
			continue
		}
		if _, ok := queued[t]; ok {
			continue
		}
		queued[t] = struct{}{}
		payloads = append(payloads, marketInsertPayload(e.eventID, e.market))
	}

	created := 0
	for _, part := range chunk(payloads, s.cfg.MarketInsertBatchSize) {
		n, err := s.createMarketsChunk(ctx, part, byTicker)
		created += n
		if err != nil {
			return nil, created, err
		}
	}
	return byTicker, created, nil
}

// createMarketsChunk inserts one chunk of market payloads, folding the
// returned rows into byTicker. A duplicate-key conflict means a concurrent
// run inserted some of the tickers mid-flight; the chunk's tickers are
// re-fetched and the remaining delta retried once.
func (s *Syncer) createMarketsChunk(ctx context.Context, part []model.MarketInsert, byTicker map[string]model.MarketRow) (int, error) {
	rows, err := s.store.CreateMarkets(ctx, part)
	if err == nil {
		for _, r := range rows {
			byTicker[r.Ticker] = r
		}
		return len(rows), nil
	}
	if !errors.Is(err, storage.ErrDuplicateKey) {
		return 0, fmt.Errorf("create markets: %w", err)
	}

	tickers := make([]string, len(part))
	for i, p := range part {
		tickers[i] = p.Ticker
	}
	existing, err := s.store.GetMarketsByTickers(ctx, tickers)
	if err != nil {
		return 0, fmt.Errorf("re-fetch markets after conflict: %w", err)
	}
	for _, r := range existing {
		byTicker[r.Ticker] = r
	}

	var remaining []model.MarketInsert
	for _, p := range part {
		if _, ok := byTicker[p.Ticker]; !ok {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == 0 {
		return 0, nil
	}
	rows, err = s.store.CreateMarkets(ctx, remaining)
	if err != nil {
		return 0, fmt.Errorf("create markets after conflict re-fetch: %w", err)
	}
	for _, r := range rows {
		byTicker[r.Ticker] = r
	}
	return len(rows), nil
}
