package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 10
	DefaultMinConns  = 2

	DefaultExchangeSlug          = "kalshi"
	DefaultExchangeName          = "Kalshi"
	DefaultEventStatus           = "open"
	DefaultPageLimit             = 200
	DefaultMaxEventPages         = 500
	DefaultSnapshotBatchSize     = 100
	DefaultMarketGetBatchSize    = 100
	DefaultMarketInsertBatchSize = 500
)

func (c *SyncerConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Sync defaults
	if c.Sync.ExchangeSlug == "" {
		c.Sync.ExchangeSlug = DefaultExchangeSlug
	}
	if c.Sync.ExchangeName == "" {
		c.Sync.ExchangeName = DefaultExchangeName
	}
	if c.Sync.EventStatus == "" {
		c.Sync.EventStatus = DefaultEventStatus
	}
	if c.Sync.PageLimit == 0 {
		c.Sync.PageLimit = DefaultPageLimit
	}
	if c.Sync.MaxEventPages == 0 {
		c.Sync.MaxEventPages = DefaultMaxEventPages
	}
	if c.Sync.SnapshotBatchSize == 0 {
		c.Sync.SnapshotBatchSize = DefaultSnapshotBatchSize
	}
	if c.Sync.MarketGetBatchSize == 0 {
		c.Sync.MarketGetBatchSize = DefaultMarketGetBatchSize
	}
	if c.Sync.MarketInsertBatchSize == 0 {
		c.Sync.MarketInsertBatchSize = DefaultMarketInsertBatchSize
	}
}
