package api

// EventsResponse from GET /events
type EventsResponse struct {
	Events []APIEvent `json:"events"`
	Cursor string     `json:"cursor"`
}

// SingleEventResponse from GET /events/{event_ticker}
type SingleEventResponse struct {
	Event APIEvent `json:"event"`
}

// SeriesResponse from GET /series/{series_ticker}
type SeriesResponse struct {
	Series APISeries `json:"series"`
}

// SingleMarketResponse from GET /markets/{ticker}
type SingleMarketResponse struct {
	Market APIMarket `json:"market"`
}

// APISeries represents a series from the Kalshi API.
// Volume fields are present only when include_volume=true was requested.
type APISeries struct {
	Ticker           string   `json:"ticker"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Frequency        string   `json:"frequency"`
	ContractURL      string   `json:"contract_url"`
	ContractTermsURL string   `json:"contract_terms_url"`
	FeeType          string   `json:"fee_type"`
	FeeMultiplier    *float64 `json:"fee_multiplier"`
	Volume           *float64 `json:"volume"`
	VolumeFP         string   `json:"volume_fp"`
}

// APIEvent represents an event from the Kalshi API.
// Markets is populated only when with_nested_markets=true was requested.
type APIEvent struct {
	EventTicker          string      `json:"event_ticker"`
	SeriesTicker         string      `json:"series_ticker"`
	Title                string      `json:"title"`
	SubTitle             string      `json:"sub_title"`
	Category             string      `json:"category"`
	CollateralReturnType string      `json:"collateral_return_type"`
	MutuallyExclusive    bool        `json:"mutually_exclusive"`
	AvailableOnBrokers   bool        `json:"available_on_brokers"`
	StrikeDate           string      `json:"strike_date"`
	StrikePeriod         string      `json:"strike_period"`
	Markets              []APIMarket `json:"markets"`
}

// APIMarket represents a market from the Kalshi API.
//
// Prices arrive twice: as optional integer cents and as fixed-point dollar
// strings (sub-penny precision). Both are preserved; pointer fields
// distinguish "absent" from zero.
type APIMarket struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	MarketType  string `json:"market_type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	YesSubTitle string `json:"yes_sub_title"`
	NoSubTitle  string `json:"no_sub_title"`
	Status      string `json:"status"`
	Result      string `json:"result"`

	// Prices in cents
	YesBid        *int64 `json:"yes_bid"`
	YesAsk        *int64 `json:"yes_ask"`
	NoBid         *int64 `json:"no_bid"`
	NoAsk         *int64 `json:"no_ask"`
	LastPrice     *int64 `json:"last_price"`
	PreviousPrice *int64 `json:"previous_price"`

	// Prices as fixed-point dollar strings (sub-penny)
	YesBidDollars        string `json:"yes_bid_dollars"`
	YesAskDollars        string `json:"yes_ask_dollars"`
	NoBidDollars         string `json:"no_bid_dollars"`
	NoAskDollars         string `json:"no_ask_dollars"`
	LastPriceDollars     string `json:"last_price_dollars"`
	PreviousPriceDollars string `json:"previous_price_dollars"`

	// Volume and liquidity
	Volume           *int64 `json:"volume"`
	VolumeFP         string `json:"volume_fp"`
	Volume24h        *int64 `json:"volume_24h"`
	Volume24hFP      string `json:"volume_24h_fp"`
	Liquidity        *int64 `json:"liquidity"`
	LiquidityDollars string `json:"liquidity_dollars"`
	OpenInterest     *int64 `json:"open_interest"`
	OpenInterestFP   string `json:"open_interest_fp"`

	// Timestamps (ISO 8601)
	CreatedTime    string `json:"created_time"`
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	ExpirationTime string `json:"expiration_time"`

	// Lifecycle and strike metadata
	CanCloseEarly bool     `json:"can_close_early"`
	TickSize      *int64   `json:"tick_size"`
	StrikeType    string   `json:"strike_type"`
	FloorStrike   *float64 `json:"floor_strike"`
	CapStrike     *float64 `json:"cap_strike"`
}

// GetEventsOptions configures a GetEvents request.
type GetEventsOptions struct {
	Limit             int
	Cursor            string
	SeriesTicker      string
	Status            string
	WithNestedMarkets bool
}

// GetEventOptions configures a GetEvent request.
type GetEventOptions struct {
	WithNestedMarkets bool
}

// GetSeriesOptions configures a GetSeries request.
type GetSeriesOptions struct {
	IncludeVolume bool
}
