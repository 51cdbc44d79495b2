package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/kalshi-sync/internal/api"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

// Config holds the operational knobs for the pipeline.
type Config struct {
	// ExchangeSlug and ExchangeName identify the exchange row all synced
	// data hangs off.
	ExchangeSlug string
	ExchangeName string

	// EventStatus filters the event listing (e.g. "open").
	EventStatus string

	// PageLimit is the page size requested from the provider.
	PageLimit int

	// MaxEventPages bounds the pagination walk per series.
	MaxEventPages int

	SnapshotBatchSize     int
	MarketGetBatchSize    int
	MarketInsertBatchSize int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ExchangeSlug:          "kalshi",
		ExchangeName:          "Kalshi",
		EventStatus:           "open",
		PageLimit:             200,
		MaxEventPages:         500,
		SnapshotBatchSize:     100,
		MarketGetBatchSize:    100,
		MarketInsertBatchSize: 500,
	}
}

// Syncer runs the sync pipeline for single series or events.
type Syncer struct {
	cfg      Config
	provider Provider
	store    storage.Store
	logger   *slog.Logger
}

// New creates a Syncer. Zero-valued config fields fall back to the defaults;
// a nil logger falls back to slog.Default().
func New(cfg Config, provider Provider, store storage.Store, logger *slog.Logger) *Syncer {
	def := DefaultConfig()
	if cfg.ExchangeSlug == "" {
		cfg.ExchangeSlug = def.ExchangeSlug
	}
	if cfg.ExchangeName == "" {
		cfg.ExchangeName = def.ExchangeName
	}
	if cfg.EventStatus == "" {
		cfg.EventStatus = def.EventStatus
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = def.PageLimit
	}
	if cfg.MaxEventPages <= 0 {
		cfg.MaxEventPages = def.MaxEventPages
	}
	if cfg.SnapshotBatchSize <= 0 {
		cfg.SnapshotBatchSize = def.SnapshotBatchSize
	}
	if cfg.MarketGetBatchSize <= 0 {
		cfg.MarketGetBatchSize = def.MarketGetBatchSize
	}
	if cfg.MarketInsertBatchSize <= 0 {
		cfg.MarketInsertBatchSize = def.MarketInsertBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		cfg:      cfg,
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

// SyncSeries ingests one series: it resolves the exchange and series rows,
// walks the paginated event listing with nested markets, resolves every event
// and market, and appends one snapshot per market observation.
func (s *Syncer) SyncSeries(ctx context.Context, seriesTicker string) (*Result, error) {
	log := s.logger.With("sync_id", uuid.New().String(), "series_ticker", seriesTicker)
	start := time.Now()

	exchange, err := s.getOrCreateExchange(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve exchange: %w", err)
	}
	series, err := s.getOrCreateSeries(ctx, exchange.ID, seriesTicker, log)
	if err != nil {
		return nil, fmt.Errorf("resolve series: %w", err)
	}

	events, err := s.listEvents(ctx, seriesTicker, log)
	if err != nil {
		return nil, err
	}

	res := &Result{EventsCount: len(events)}
	var entries []marketEntry
	for i := range events {
		ev := &events[i]
		row, err := s.getOrCreateEvent(ctx, exchange.ID, &series.ID, ev)
		if err != nil {
			return nil, fmt.Errorf("resolve event %s: %w", ev.EventTicker, err)
		}
		res.MarketsCount += len(ev.Markets)
		for j := range ev.Markets {
			entries = append(entries, marketEntry{eventID: row.ID, market: &ev.Markets[j]})
		}
	}

	if err := s.persistMarkets(ctx, entries, res); err != nil {
		return nil, err
	}

	log.Info("series sync complete",
		"events", res.EventsCount,
		"markets", res.MarketsCount,
		"markets_created", res.MarketsCreated,
		"snapshots_created", res.SnapshotsCreated,
		"duration", time.Since(start))
	return res, nil
}

// SyncEvent ingests a single event by ticker, with its nested markets.
// The event row is stored without a series link.
func (s *Syncer) SyncEvent(ctx context.Context, eventTicker string) (*Result, error) {
	log := s.logger.With("sync_id", uuid.New().String(), "event_ticker", eventTicker)
	start := time.Now()

	exchange, err := s.getOrCreateExchange(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve exchange: %w", err)
	}

	ev, err := s.provider.GetEvent(ctx, eventTicker, api.GetEventOptions{WithNestedMarkets: true})
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", eventTicker, err)
	}

	row, err := s.getOrCreateEvent(ctx, exchange.ID, nil, ev)
	if err != nil {
		return nil, fmt.Errorf("resolve event %s: %w", eventTicker, err)
	}

	res := &Result{EventsCount: 1, MarketsCount: len(ev.Markets)}
	entries := make([]marketEntry, 0, len(ev.Markets))
	for j := range ev.Markets {
		entries = append(entries, marketEntry{eventID: row.ID, market: &ev.Markets[j]})
	}

	if err := s.persistMarkets(ctx, entries, res); err != nil {
		return nil, err
	}

	log.Info("event sync complete",
		"markets", res.MarketsCount,
		"markets_created", res.MarketsCreated,
		"snapshots_created", res.SnapshotsCreated,
		"duration", time.Since(start))
	return res, nil
}

// persistMarkets bulk-resolves the entries' markets, then appends one
// snapshot per observation through the batcher. Counts are recorded on res
// only after the corresponding store writes succeeded.
func (s *Syncer) persistMarkets(ctx context.Context, entries []marketEntry, res *Result) error {
	byTicker, created, err := s.resolveMarkets(ctx, entries)
	res.MarketsCreated = created
	if err != nil {
		return err
	}

	batcher := newSnapshotBatcher(s.store, s.cfg.SnapshotBatchSize)
	for _, e := range entries {
		if e.market.Ticker == "" {
			s.logger.Warn("skipping market with empty ticker", "event_id", e.eventID)
			continue
		}
		row, ok := byTicker[e.market.Ticker]
		if !ok {
			res.SnapshotsCreated = batcher.created
			return fmt.Errorf("market %s missing after bulk resolution", e.market.Ticker)
		}
		if err := batcher.add(ctx, snapshotPayload(row.ID, e.market)); err != nil {
			res.SnapshotsCreated = batcher.created
			return err
		}
	}
	if err := batcher.flush(ctx); err != nil {
		res.SnapshotsCreated = batcher.created
		return err
	}
	res.SnapshotsCreated = batcher.created
	return nil
}
