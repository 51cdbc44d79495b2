package model

import "time"

// -----------------------------------------------------------------------------
// Rows (as persisted, with store-generated IDs)
// -----------------------------------------------------------------------------

// ExchangeRow is a market-data venue (e.g. "kalshi"). Unique by Slug.
type ExchangeRow struct {
	ID        int64
	Slug      string
	Name      string
	CreatedAt time.Time
}

// SeriesRow is a recurring family of events. Unique by (Ticker, ExchangeID).
type SeriesRow struct {
	ID               int64
	ExchangeID       int64
	Ticker           string
	Title            *string
	Category         *string
	Frequency        *string
	ContractURL      *string
	ContractTermsURL *string
	FeeType          *string
	FeeMultiplier    *float64
	Volume           *float64
	CreatedAt        time.Time
}

// EventRow is a single occurrence within a series. Unique by Ticker.
// SeriesID is nil for events synced standalone.
type EventRow struct {
	ID                   int64
	ExchangeID           int64
	SeriesID             *int64
	Ticker               string
	Title                *string
	SubTitle             *string
	Category             *string
	CollateralReturnType *string
	MutuallyExclusive    bool
	StrikeDate           *time.Time
	StrikePeriod         *string
	CreatedAt            time.Time
}

// MarketRow is a tradeable market within an event. Unique by Ticker.
type MarketRow struct {
	ID             int64
	EventID        int64
	Ticker         string
	MarketType     *string
	Title          *string
	Subtitle       *string
	YesSubTitle    *string
	NoSubTitle     *string
	Status         *string
	Result         *string
	OpenTime       *time.Time
	CloseTime      *time.Time
	ExpirationTime *time.Time
	CreatedTime    *time.Time
	CanCloseEarly  *bool
	TickSize       *int64
	StrikeType     *string
	FloorStrike    *float64
	CapStrike      *float64
	CreatedAt      time.Time
}

// -----------------------------------------------------------------------------
// Insert payloads (what the store accepts; IDs assigned by the store)
// -----------------------------------------------------------------------------

// ExchangeInsert creates an exchange.
type ExchangeInsert struct {
	Slug string
	Name string
}

// SeriesInsert creates a series under an exchange.
type SeriesInsert struct {
	ExchangeID       int64
	Ticker           string
	Title            *string
	Category         *string
	Frequency        *string
	ContractURL      *string
	ContractTermsURL *string
	FeeType          *string
	FeeMultiplier    *float64
	Volume           *float64
}

// EventInsert creates an event. SeriesID nil stores the event standalone.
type EventInsert struct {
	ExchangeID           int64
	SeriesID             *int64
	Ticker               string
	Title                *string
	SubTitle             *string
	Category             *string
	CollateralReturnType *string
	MutuallyExclusive    bool
	StrikeDate           *time.Time
	StrikePeriod         *string
}

// MarketInsert creates a market under an event.
type MarketInsert struct {
	EventID        int64
	Ticker         string
	MarketType     *string
	Title          *string
	Subtitle       *string
	YesSubTitle    *string
	NoSubTitle     *string
	Status         *string
	Result         *string
	OpenTime       *time.Time
	CloseTime      *time.Time
	ExpirationTime *time.Time
	CreatedTime    *time.Time
	CanCloseEarly  *bool
	TickSize       *int64
	StrikeType     *string
	FloorStrike    *float64
	CapStrike      *float64
}

// MarketSnapshotInsert records one price observation for a market.
// Raw integer cents are preserved next to the derived dollar values so
// downstream consumers can choose either representation.
type MarketSnapshotInsert struct {
	MarketID int64

	YesBid           *int64
	YesBidDollars    *float64
	YesAsk           *int64
	YesAskDollars    *float64
	NoBid            *int64
	NoBidDollars     *float64
	NoAsk            *int64
	NoAskDollars     *float64
	LastPrice        *int64
	LastPriceDollars *float64

	Volume           *int64
	Volume24h        *int64
	OpenInterest     *int64
	Liquidity        *int64
	LiquidityDollars *float64
}
