package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rickgao/kalshi-sync/internal/api"
	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

// getOrCreateExchange resolves the configured exchange row, creating it on
// first use. A duplicate-key conflict means a concurrent run created it; the
// winner's row is re-fetched and used.
func (s *Syncer) getOrCreateExchange(ctx context.Context) (*model.ExchangeRow, error) {
	row, err := s.store.GetExchangeBySlug(ctx, s.cfg.ExchangeSlug)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get exchange %s: %w", s.cfg.ExchangeSlug, err)
	}

	row, err = s.store.CreateExchange(ctx, model.ExchangeInsert{
		Slug: s.cfg.ExchangeSlug,
		Name: s.cfg.ExchangeName,
	})
	if err == nil {
		return row, nil
	}
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.store.GetExchangeBySlug(ctx, s.cfg.ExchangeSlug)
	}
	return nil, fmt.Errorf("create exchange %s: %w", s.cfg.ExchangeSlug, err)
}

// getOrCreateSeries resolves a series row by ticker under an exchange. When
// the row is missing it fetches series detail from the provider; if that
// fetch fails the series is created from a minimal payload so the sync can
// proceed without metadata.
func (s *Syncer) getOrCreateSeries(ctx context.Context, exchangeID int64, ticker string, log *slog.Logger) (*model.SeriesRow, error) {
	row, err := s.store.GetSeriesByTicker(ctx, ticker, exchangeID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get series %s: %w", ticker, err)
	}

	var payload model.SeriesInsert
	detail, err := s.provider.GetSeries(ctx, ticker, api.GetSeriesOptions{IncludeVolume: true})
	if err != nil {
		log.Warn("series detail unavailable, creating minimal row",
			"series_ticker", ticker, "error", err)
		payload = minimalSeriesPayload(exchangeID, ticker)
	} else {
		payload = seriesInsertPayload(exchangeID, detail)
	}

	row, err = s.store.CreateSeries(ctx, payload)
	if err == nil {
		return row, nil
	}
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.store.GetSeriesByTicker(ctx, ticker, exchangeID)
	}
	return nil, fmt.Errorf("create series %s: %w", ticker, err)
}

// getOrCreateEvent resolves an event row by ticker, creating it from the
// provider payload when missing.
func (s *Syncer) getOrCreateEvent(ctx context.Context, exchangeID int64, seriesID *int64, ev *api.APIEvent) (*model.EventRow, error) {
	row, err := s.store.GetEventByTicker(ctx, ev.EventTicker)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get event %s: %w", ev.EventTicker, err)
	}

	row, err = s.store.CreateEvent(ctx, eventInsertPayload(exchangeID, seriesID, ev))
	if err == nil {
		return row, nil
	}
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.store.GetEventByTicker(ctx, ev.EventTicker)
	}
	return nil, fmt.Errorf("create event %s: %w", ev.EventTicker, err)
}
