package config

import "time"

// SyncerConfig is the root configuration for a syncer instance.
type SyncerConfig struct {
	API       APIConfig       `yaml:"api"`
	Database  DBConfig        `yaml:"database"`
	Sync      SyncConfig      `yaml:"sync"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// APIConfig holds Kalshi API settings.
//
// APIKey sends a bearer token. For endpoints that require signed requests,
// set KeyID and PrivateKeyPath instead; signing takes precedence.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	KeyID          string        `yaml:"key_id"`
	PrivateKeyPath string        `yaml:"private_key_path"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	RetryBackoff   time.Duration `yaml:"retry_backoff"`
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// SyncConfig holds the sync pipeline settings.
type SyncConfig struct {
	ExchangeSlug string `yaml:"exchange_slug"`
	ExchangeName string `yaml:"exchange_name"`

	// Tickers to sync each pass. Series syncs walk the full open-event
	// listing; event syncs fetch a single standalone event.
	SeriesTickers []string `yaml:"series_tickers"`
	EventTickers  []string `yaml:"event_tickers"`

	// EventStatus filters the event listing (e.g. "open").
	EventStatus string `yaml:"event_status"`

	// PageLimit is the events-per-page request size (1..200).
	PageLimit int `yaml:"page_limit"`

	// MaxEventPages caps cursor pagination; exceeding it fails the run
	// instead of looping on a provider that never terminates.
	MaxEventPages int `yaml:"max_event_pages"`

	SnapshotBatchSize     int `yaml:"snapshot_batch_size"`
	MarketGetBatchSize    int `yaml:"market_get_batch_size"`
	MarketInsertBatchSize int `yaml:"market_insert_batch_size"`
}

// SchedulerConfig holds the interval runner settings. A zero interval
// disables scheduling (one-shot runs only).
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval"`
}
