// Package api provides the Kalshi REST API client used as the sync
// pipeline's market-data provider.
//
// Endpoints:
//   - Production: https://api.elections.kalshi.com/trade-api/v2
//   - Demo: https://demo-api.kalshi.co/trade-api/v2
//
// The client exposes the four operations the pipeline needs: paged event
// listings (optionally with nested markets), single event fetch, series
// detail fetch, and single market fetch.
package api
