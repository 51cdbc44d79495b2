package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetMarket fetches a single market by ticker. Bulk flows read markets
// nested in event listings; this is only for single-market enrichment.
func (c *Client) GetMarket(ctx context.Context, ticker string) (*APIMarket, error) {
	var resp SingleMarketResponse
	if err := c.get(ctx, "/markets/"+url.PathEscape(ticker), nil, &resp); err != nil {
		return nil, fmt.Errorf("get market %s: %w", ticker, err)
	}
	return &resp.Market, nil
}
