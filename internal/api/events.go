package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MaxEventPageLimit is the largest page size the events endpoint accepts.
const MaxEventPageLimit = 200

// GetEvents fetches a page of events. The limit is clamped to 1..200.
func (c *Client) GetEvents(ctx context.Context, opts GetEventsOptions) (*EventsResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		limit := opts.Limit
		if limit > MaxEventPageLimit {
			limit = MaxEventPageLimit
		}
		query.Set("limit", strconv.Itoa(limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.SeriesTicker != "" {
		query.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.WithNestedMarkets {
		query.Set("with_nested_markets", "true")
	}

	var resp EventsResponse
	if err := c.get(ctx, "/events", query, &resp); err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}

	return &resp, nil
}

// GetEvent fetches a single event by ticker.
func (c *Client) GetEvent(ctx context.Context, eventTicker string, opts GetEventOptions) (*APIEvent, error) {
	query := url.Values{}
	if opts.WithNestedMarkets {
		query.Set("with_nested_markets", "true")
	}

	var resp SingleEventResponse
	if err := c.get(ctx, "/events/"+url.PathEscape(eventTicker), query, &resp); err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventTicker, err)
	}
	return &resp.Event, nil
}
