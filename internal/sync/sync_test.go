package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rickgao/kalshi-sync/internal/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSyncer(cfg Config, provider *fakeProvider, store *fakeStore) *Syncer {
	return New(cfg, provider, store, testLogger())
}

func testMarket(ticker string) api.APIMarket {
	yesBid := int64(40)
	volume := int64(1200)
	return api.APIMarket{
		Ticker:        ticker,
		MarketType:    "binary",
		Title:         "Will it happen?",
		Status:        "active",
		YesBid:        &yesBid,
		YesBidDollars: "0.40",
		Volume:        &volume,
		OpenTime:      "2026-01-02T15:04:05Z",
	}
}

func testEvent(ticker string, markets ...api.APIMarket) api.APIEvent {
	return api.APIEvent{
		EventTicker:  ticker,
		SeriesTicker: "KXTEST",
		Title:        "Test event",
		Markets:      markets,
	}
}

func testSeriesProvider(pages []api.EventsResponse) *fakeProvider {
	return &fakeProvider{
		pagesBySeries: map[string][]api.EventsResponse{"KXTEST": pages},
		series: map[string]*api.APISeries{
			"KXTEST": {Ticker: "KXTEST", Title: "Test Series", Category: "Test"},
		},
	}
}

func TestSyncSeriesCreatesHierarchy(t *testing.T) {
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", testMarket("KXTEST-26A-T1"), testMarket("KXTEST-26A-T2")),
		testEvent("KXTEST-26B", testMarket("KXTEST-26B-T1")),
	}))
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}

	if res.EventsCount != 2 || res.MarketsCount != 3 {
		t.Errorf("counts = %d events, %d markets, want 2, 3", res.EventsCount, res.MarketsCount)
	}
	if res.MarketsCreated != 3 || res.SnapshotsCreated != 3 {
		t.Errorf("created = %d markets, %d snapshots, want 3, 3", res.MarketsCreated, res.SnapshotsCreated)
	}

	if len(store.exchanges) != 1 || len(store.series) != 1 {
		t.Errorf("store has %d exchanges, %d series, want 1, 1", len(store.exchanges), len(store.series))
	}
	if len(store.events) != 2 || len(store.markets) != 3 {
		t.Errorf("store has %d events, %d markets, want 2, 3", len(store.events), len(store.markets))
	}

	series := store.series["KXTEST/1"]
	if series.Title == nil || *series.Title != "Test Series" {
		t.Errorf("series title = %v, want Test Series", series.Title)
	}
	ev := store.events["KXTEST-26A"]
	if ev.SeriesID == nil || *ev.SeriesID != series.ID {
		t.Errorf("event series id = %v, want %d", ev.SeriesID, series.ID)
	}

	if len(store.snapshots) != 3 {
		t.Fatalf("store has %d snapshots, want 3", len(store.snapshots))
	}
	snap := store.snapshots[0]
	if snap.YesBid == nil || *snap.YesBid != 40 {
		t.Errorf("snapshot yes bid = %v, want 40", snap.YesBid)
	}
	if snap.YesBidDollars == nil || *snap.YesBidDollars != 0.40 {
		t.Errorf("snapshot yes bid dollars = %v, want 0.40", snap.YesBidDollars)
	}
}

func TestSyncSeriesIdempotent(t *testing.T) {
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", testMarket("KXTEST-26A-T1"), testMarket("KXTEST-26A-T2")),
	}))
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	if _, err := s.SyncSeries(context.Background(), "KXTEST"); err != nil {
		t.Fatalf("first SyncSeries() error = %v", err)
	}
	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("second SyncSeries() error = %v", err)
	}

	if res.MarketsCreated != 0 {
		t.Errorf("second run created %d markets, want 0", res.MarketsCreated)
	}
	if len(store.exchanges) != 1 || len(store.series) != 1 || len(store.events) != 1 || len(store.markets) != 2 {
		t.Errorf("second run duplicated entities: %d exchanges, %d series, %d events, %d markets",
			len(store.exchanges), len(store.series), len(store.events), len(store.markets))
	}
	if res.SnapshotsCreated != 2 || len(store.snapshots) != 4 {
		t.Errorf("snapshots = %d new, %d total, want 2 new, 4 total", res.SnapshotsCreated, len(store.snapshots))
	}
}

func TestSyncSeriesDuplicateTickerAcrossEvents(t *testing.T) {
	shared := testMarket("KXTEST-SHARED")
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", shared),
		testEvent("KXTEST-26B", shared),
	}))
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}

	if res.MarketsCreated != 1 {
		t.Errorf("created %d markets, want 1", res.MarketsCreated)
	}
	if res.MarketsCount != 2 || res.SnapshotsCreated != 2 {
		t.Errorf("observations = %d markets, %d snapshots, want 2, 2", res.MarketsCount, res.SnapshotsCreated)
	}

	// First occurrence decides which event owns the market row.
	row := store.markets["KXTEST-SHARED"]
	first := store.events["KXTEST-26A"]
	if row.EventID != first.ID {
		t.Errorf("market event id = %d, want %d", row.EventID, first.ID)
	}
}

func TestSyncSeriesPagination(t *testing.T) {
	provider := testSeriesProvider(eventPages(
		[]api.APIEvent{testEvent("KXTEST-26A")},
		[]api.APIEvent{testEvent("KXTEST-26B")},
		[]api.APIEvent{testEvent("KXTEST-26C")},
	))
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}
	if res.EventsCount != 3 {
		t.Errorf("events = %d, want 3", res.EventsCount)
	}
	if provider.getEventsCalls != 3 {
		t.Errorf("GetEvents calls = %d, want 3", provider.getEventsCalls)
	}
}

func TestSyncSeriesPaginationGuard(t *testing.T) {
	// A page whose cursor points back at itself never drains.
	provider := testSeriesProvider([]api.EventsResponse{
		{Events: []api.APIEvent{testEvent("KXTEST-26A")}, Cursor: "0"},
	})
	store := newFakeStore()
	s := newTestSyncer(Config{MaxEventPages: 3}, provider, store)

	_, err := s.SyncSeries(context.Background(), "KXTEST")
	if err == nil {
		t.Fatal("SyncSeries() expected error for non-terminating cursor")
	}
	if !strings.Contains(err.Error(), "pages") {
		t.Errorf("error = %v, want mention of page bound", err)
	}
	if provider.getEventsCalls != 3 {
		t.Errorf("GetEvents calls = %d, want 3", provider.getEventsCalls)
	}
}

func TestSyncSeriesMinimalFallback(t *testing.T) {
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", testMarket("KXTEST-26A-T1")),
	}))
	provider.seriesErr = errors.New("series endpoint down")
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	if _, err := s.SyncSeries(context.Background(), "KXTEST"); err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}

	series := store.series["KXTEST/1"]
	if series.Title == nil || *series.Title != "KXTEST" {
		t.Errorf("fallback series title = %v, want ticker KXTEST", series.Title)
	}
}

func TestSyncSeriesChunking(t *testing.T) {
	markets := make([]api.APIMarket, 250)
	for i := range markets {
		markets[i] = testMarket(fmt.Sprintf("KXTEST-26A-T%d", i))
	}
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", markets...),
	}))
	store := newFakeStore()
	s := newTestSyncer(Config{
		SnapshotBatchSize:     100,
		MarketGetBatchSize:    100,
		MarketInsertBatchSize: 100,
	}, provider, store)

	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}
	if res.MarketsCreated != 250 || res.SnapshotsCreated != 250 {
		t.Errorf("created = %d markets, %d snapshots, want 250, 250", res.MarketsCreated, res.SnapshotsCreated)
	}

	wantChunks := []int{100, 100, 50}
	assertChunks := func(name string, got []int) {
		t.Helper()
		if len(got) != len(wantChunks) {
			t.Fatalf("%s chunks = %v, want %v", name, got, wantChunks)
		}
		for i, n := range wantChunks {
			if got[i] != n {
				t.Errorf("%s chunk %d = %d, want %d", name, i, got[i], n)
			}
		}
	}
	assertChunks("lookup", store.getMarketChunks)
	assertChunks("insert", store.createMarketChunks)
	assertChunks("snapshot", store.snapshotBatches)
}

func TestSyncSeriesConflictRetry(t *testing.T) {
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A",
			testMarket("KXTEST-26A-T1"),
			testMarket("KXTEST-26A-T2"),
			testMarket("KXTEST-26A-T3")),
	}))
	store := newFakeStore()
	store.conflictNextCreateMarkets = true
	s := newTestSyncer(Config{}, provider, store)

	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}

	// The ticker lost to the concurrent run is not counted as created here.
	if res.MarketsCreated != 2 {
		t.Errorf("created = %d markets, want 2", res.MarketsCreated)
	}
	if len(store.markets) != 3 {
		t.Errorf("store has %d markets, want 3", len(store.markets))
	}
	if res.SnapshotsCreated != 3 {
		t.Errorf("snapshots = %d, want 3", res.SnapshotsCreated)
	}
}

func TestSyncSeriesSkipsEmptyTicker(t *testing.T) {
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", testMarket("KXTEST-26A-T1"), testMarket("")),
	}))
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	res, err := s.SyncSeries(context.Background(), "KXTEST")
	if err != nil {
		t.Fatalf("SyncSeries() error = %v", err)
	}
	if res.MarketsCount != 2 {
		t.Errorf("observations = %d, want 2", res.MarketsCount)
	}
	if res.MarketsCreated != 1 || res.SnapshotsCreated != 1 {
		t.Errorf("created = %d markets, %d snapshots, want 1, 1", res.MarketsCreated, res.SnapshotsCreated)
	}
}

func TestSyncSeriesSnapshotInsertError(t *testing.T) {
	provider := testSeriesProvider(eventPages([]api.APIEvent{
		testEvent("KXTEST-26A", testMarket("KXTEST-26A-T1")),
	}))
	store := newFakeStore()
	store.snapshotErr = errors.New("connection reset")
	s := newTestSyncer(Config{}, provider, store)

	if _, err := s.SyncSeries(context.Background(), "KXTEST"); err == nil {
		t.Fatal("SyncSeries() expected error from snapshot insert")
	}
	if len(store.snapshots) != 0 {
		t.Errorf("store has %d snapshots after failure, want 0", len(store.snapshots))
	}
}

func TestSyncEvent(t *testing.T) {
	ev := testEvent("KXTEST-26A", testMarket("KXTEST-26A-T1"), testMarket("KXTEST-26A-T2"))
	provider := &fakeProvider{
		events: map[string]*api.APIEvent{"KXTEST-26A": &ev},
	}
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	res, err := s.SyncEvent(context.Background(), "KXTEST-26A")
	if err != nil {
		t.Fatalf("SyncEvent() error = %v", err)
	}

	if res.EventsCount != 1 || res.MarketsCount != 2 || res.SnapshotsCreated != 2 {
		t.Errorf("result = %+v, want 1 event, 2 markets, 2 snapshots", res)
	}
	row := store.events["KXTEST-26A"]
	if row.SeriesID != nil {
		t.Errorf("standalone event series id = %v, want nil", row.SeriesID)
	}
	if len(store.series) != 0 {
		t.Errorf("store has %d series, want 0", len(store.series))
	}
}

func TestSyncEventNotFound(t *testing.T) {
	provider := &fakeProvider{events: map[string]*api.APIEvent{}}
	store := newFakeStore()
	s := newTestSyncer(Config{}, provider, store)

	_, err := s.SyncEvent(context.Background(), "KXMISSING-26A")
	if err == nil {
		t.Fatal("SyncEvent() expected error for unknown event")
	}
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
		t.Errorf("error = %v, want wrapped 404 APIError", err)
	}
}
