package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rickgao/kalshi-sync/internal/api"
)

// listEvents retrieves every event for a series matching the configured
// status filter, following the provider's cursor until it comes back empty.
// MaxEventPages bounds the walk so a provider that keeps returning the same
// cursor cannot loop forever.
func (s *Syncer) listEvents(ctx context.Context, seriesTicker string, log *slog.Logger) ([]api.APIEvent, error) {
	opts := api.GetEventsOptions{
		Limit:             s.cfg.PageLimit,
		SeriesTicker:      seriesTicker,
		Status:            s.cfg.EventStatus,
		WithNestedMarkets: true,
	}

	var all []api.APIEvent
	for page := 1; ; page++ {
		if page > s.cfg.MaxEventPages {
			return nil, fmt.Errorf("event listing for %s exceeded %d pages without draining the cursor",
				seriesTicker, s.cfg.MaxEventPages)
		}
		resp, err := s.provider.GetEvents(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list events page %d: %w", page, err)
		}
		all = append(all, resp.Events...)
		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	log.Debug("listed events", "series_ticker", seriesTicker, "count", len(all))
	return all, nil
}
