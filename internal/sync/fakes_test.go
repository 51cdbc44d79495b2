package sync

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rickgao/kalshi-sync/internal/api"
	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

// fakeStore is an in-memory storage.Store that enforces the same unique keys
// as the real schema and records the chunk sizes of bulk calls.
type fakeStore struct {
	nextID    int64
	exchanges map[string]model.ExchangeRow
	series    map[string]model.SeriesRow
	events    map[string]model.EventRow
	markets   map[string]model.MarketRow
	snapshots []model.MarketSnapshotInsert

	getMarketChunks    []int
	createMarketChunks []int
	snapshotBatches    []int

	// conflictNextCreateMarkets makes the next CreateMarkets call behave as
	// if a concurrent run won the race for the first payload: that row is
	// inserted under the hood and the call reports a duplicate key.
	conflictNextCreateMarkets bool

	snapshotErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		exchanges: make(map[string]model.ExchangeRow),
		series:    make(map[string]model.SeriesRow),
		events:    make(map[string]model.EventRow),
		markets:   make(map[string]model.MarketRow),
	}
}

var _ storage.Store = (*fakeStore)(nil)

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) GetExchangeBySlug(_ context.Context, slug string) (*model.ExchangeRow, error) {
	row, ok := f.exchanges[slug]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &row, nil
}

func (f *fakeStore) CreateExchange(_ context.Context, p model.ExchangeInsert) (*model.ExchangeRow, error) {
	if _, ok := f.exchanges[p.Slug]; ok {
		return nil, storage.ErrDuplicateKey
	}
	row := model.ExchangeRow{ID: f.id(), Slug: p.Slug, Name: p.Name}
	f.exchanges[p.Slug] = row
	return &row, nil
}

func (f *fakeStore) GetSeriesByTicker(_ context.Context, ticker string, exchangeID int64) (*model.SeriesRow, error) {
	row, ok := f.series[fmt.Sprintf("%s/%d", ticker, exchangeID)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &row, nil
}

func (f *fakeStore) CreateSeries(_ context.Context, p model.SeriesInsert) (*model.SeriesRow, error) {
	key := fmt.Sprintf("%s/%d", p.Ticker, p.ExchangeID)
	if _, ok := f.series[key]; ok {
		return nil, storage.ErrDuplicateKey
	}
	row := model.SeriesRow{
		ID:            f.id(),
		ExchangeID:    p.ExchangeID,
		Ticker:        p.Ticker,
		Title:         p.Title,
		Category:      p.Category,
		FeeMultiplier: p.FeeMultiplier,
		Volume:        p.Volume,
	}
	f.series[key] = row
	return &row, nil
}

func (f *fakeStore) GetEventByTicker(_ context.Context, ticker string) (*model.EventRow, error) {
	row, ok := f.events[ticker]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &row, nil
}

func (f *fakeStore) CreateEvent(_ context.Context, p model.EventInsert) (*model.EventRow, error) {
	if _, ok := f.events[p.Ticker]; ok {
		return nil, storage.ErrDuplicateKey
	}
	row := model.EventRow{
		ID:                f.id(),
		ExchangeID:        p.ExchangeID,
		SeriesID:          p.SeriesID,
		Ticker:            p.Ticker,
		Title:             p.Title,
		MutuallyExclusive: p.MutuallyExclusive,
		StrikeDate:        p.StrikeDate,
	}
	f.events[p.Ticker] = row
	return &row, nil
}

func (f *fakeStore) GetMarketsByTickers(_ context.Context, tickers []string) ([]model.MarketRow, error) {
	f.getMarketChunks = append(f.getMarketChunks, len(tickers))
	var rows []model.MarketRow
	for _, t := range tickers {
		if row, ok := f.markets[t]; ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeStore) CreateMarkets(_ context.Context, payloads []model.MarketInsert) ([]model.MarketRow, error) {
	f.createMarketChunks = append(f.createMarketChunks, len(payloads))
	if f.conflictNextCreateMarkets {
		f.conflictNextCreateMarkets = false
		if len(payloads) > 0 {
			f.insertMarket(payloads[0])
		}
		return nil, storage.ErrDuplicateKey
	}
	rows := make([]model.MarketRow, 0, len(payloads))
	for _, p := range payloads {
		if _, ok := f.markets[p.Ticker]; ok {
			return nil, storage.ErrDuplicateKey
		}
		rows = append(rows, f.insertMarket(p))
	}
	return rows, nil
}

func (f *fakeStore) insertMarket(p model.MarketInsert) model.MarketRow {
	row := model.MarketRow{
		ID:      f.id(),
		EventID: p.EventID,
		Ticker:  p.Ticker,
		Title:   p.Title,
		Status:  p.Status,
	}
	f.markets[p.Ticker] = row
	return row
}

func (f *fakeStore) InsertMarketSnapshots(_ context.Context, payloads []model.MarketSnapshotInsert) (int, error) {
	if f.snapshotErr != nil {
		err := f.snapshotErr
		f.snapshotErr = nil
		return 0, err
	}
	f.snapshotBatches = append(f.snapshotBatches, len(payloads))
	f.snapshots = append(f.snapshots, payloads...)
	return len(payloads), nil
}

// fakeProvider serves scripted event pages keyed by series ticker. Page
// cursors encode the index of the next page so pagination is deterministic
// and repeatable across runs.
type fakeProvider struct {
	pagesBySeries map[string][]api.EventsResponse
	series        map[string]*api.APISeries
	seriesErr     error
	events        map[string]*api.APIEvent

	getEventsCalls int
}

var _ Provider = (*fakeProvider)(nil)

func (p *fakeProvider) GetEvents(_ context.Context, opts api.GetEventsOptions) (*api.EventsResponse, error) {
	p.getEventsCalls++
	pages, ok := p.pagesBySeries[opts.SeriesTicker]
	if !ok {
		return nil, &api.APIError{StatusCode: 404, Message: "series not found"}
	}
	idx := 0
	if opts.Cursor != "" {
		var err error
		idx, err = strconv.Atoi(opts.Cursor)
		if err != nil {
			return nil, fmt.Errorf("unexpected cursor %q", opts.Cursor)
		}
	}
	if idx >= len(pages) {
		return &api.EventsResponse{}, nil
	}
	return &pages[idx], nil
}

func (p *fakeProvider) GetEvent(_ context.Context, ticker string, _ api.GetEventOptions) (*api.APIEvent, error) {
	ev, ok := p.events[ticker]
	if !ok {
		return nil, &api.APIError{StatusCode: 404, Message: "event not found"}
	}
	return ev, nil
}

func (p *fakeProvider) GetSeries(_ context.Context, ticker string, _ api.GetSeriesOptions) (*api.APISeries, error) {
	if p.seriesErr != nil {
		return nil, p.seriesErr
	}
	s, ok := p.series[ticker]
	if !ok {
		return nil, &api.APIError{StatusCode: 404, Message: "series not found"}
	}
	return s, nil
}

// eventPages chains the given pages with cursors "1", "2", ... and an empty
// cursor on the last page.
func eventPages(pages ...[]api.APIEvent) []api.EventsResponse {
	out := make([]api.EventsResponse, len(pages))
	for i, events := range pages {
		out[i] = api.EventsResponse{Events: events}
		if i < len(pages)-1 {
			out[i].Cursor = strconv.Itoa(i + 1)
		}
	}
	return out
}
