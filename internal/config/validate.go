package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *SyncerConfig) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Sync.PageLimit < 1 || c.Sync.PageLimit > 200 {
		return errors.New("sync.page_limit must be between 1 and 200")
	}
	if c.Sync.MaxEventPages < 1 {
		return errors.New("sync.max_event_pages must be >= 1")
	}
	if c.Sync.SnapshotBatchSize < 1 {
		return errors.New("sync.snapshot_batch_size must be >= 1")
	}
	if c.Sync.MarketGetBatchSize < 1 {
		return errors.New("sync.market_get_batch_size must be >= 1")
	}
	if c.Sync.MarketInsertBatchSize < 1 {
		return errors.New("sync.market_insert_batch_size must be >= 1")
	}

	if c.Scheduler.Interval < 0 {
		return errors.New("scheduler.interval must not be negative")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns must not exceed max_conns", prefix)
	}
	return nil
}
