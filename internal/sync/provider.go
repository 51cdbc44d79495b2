package sync

import (
	"context"

	"github.com/rickgao/kalshi-sync/internal/api"
)

// Provider abstracts the market data API consumed by the pipeline.
// *api.Client satisfies it; tests substitute scripted fakes.
type Provider interface {
	GetEvents(ctx context.Context, opts api.GetEventsOptions) (*api.EventsResponse, error)
	GetEvent(ctx context.Context, ticker string, opts api.GetEventOptions) (*api.APIEvent, error)
	GetSeries(ctx context.Context, ticker string, opts api.GetSeriesOptions) (*api.APISeries, error)
}
