package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetSeries fetches a series by ticker.
func (c *Client) GetSeries(ctx context.Context, seriesTicker string, opts GetSeriesOptions) (*APISeries, error) {
	query := url.Values{}
	if opts.IncludeVolume {
		query.Set("include_volume", "true")
	}

	var resp SeriesResponse
	if err := c.get(ctx, "/series/"+url.PathEscape(seriesTicker), query, &resp); err != nil {
		return nil, fmt.Errorf("get series %s: %w", seriesTicker, err)
	}
	return &resp.Series, nil
}
