package sync

import (
	"github.com/rickgao/kalshi-sync/internal/api"
	"github.com/rickgao/kalshi-sync/internal/model"
)

// seriesInsertPayload maps provider series metadata onto a series insert.
func seriesInsertPayload(exchangeID int64, s *api.APISeries) model.SeriesInsert {
	return model.SeriesInsert{
		ExchangeID:       exchangeID,
		Ticker:           s.Ticker,
		Title:            strPtr(s.Title),
		Category:         strPtr(s.Category),
		Frequency:        strPtr(s.Frequency),
		ContractURL:      strPtr(s.ContractURL),
		ContractTermsURL: strPtr(s.ContractTermsURL),
		FeeType:          strPtr(s.FeeType),
		FeeMultiplier:    s.FeeMultiplier,
		Volume:           s.Volume,
	}
}

// minimalSeriesPayload is the fallback when series detail could not be
// fetched. The ticker doubles as the title so the row is still identifiable.
func minimalSeriesPayload(exchangeID int64, ticker string) model.SeriesInsert {
	title := ticker
	return model.SeriesInsert{
		ExchangeID: exchangeID,
		Ticker:     ticker,
		Title:      &title,
	}
}

// eventInsertPayload maps a provider event onto an event insert. seriesID is
// nil when the event is synced standalone.
func eventInsertPayload(exchangeID int64, seriesID *int64, ev *api.APIEvent) model.EventInsert {
	return model.EventInsert{
		ExchangeID:           exchangeID,
		SeriesID:             seriesID,
		Ticker:               ev.EventTicker,
		Title:                strPtr(ev.Title),
		SubTitle:             strPtr(ev.SubTitle),
		Category:             strPtr(ev.Category),
		CollateralReturnType: strPtr(ev.CollateralReturnType),
		MutuallyExclusive:    ev.MutuallyExclusive,
		StrikeDate:           parseTime(ev.StrikeDate),
		StrikePeriod:         strPtr(ev.StrikePeriod),
	}
}

// marketInsertPayload maps a provider market onto a market insert.
// Only the static identity and lifecycle fields go here; prices belong to
// snapshots.
func marketInsertPayload(eventID int64, m *api.APIMarket) model.MarketInsert {
	canClose := m.CanCloseEarly
	return model.MarketInsert{
		EventID:        eventID,
		Ticker:         m.Ticker,
		MarketType:     strPtr(m.MarketType),
		Title:          strPtr(m.Title),
		Subtitle:       strPtr(m.Subtitle),
		YesSubTitle:    strPtr(m.YesSubTitle),
		NoSubTitle:     strPtr(m.NoSubTitle),
		Status:         strPtr(m.Status),
		Result:         strPtr(m.Result),
		OpenTime:       parseTime(m.OpenTime),
		CloseTime:      parseTime(m.CloseTime),
		ExpirationTime: parseTime(m.ExpirationTime),
		CreatedTime:    parseTime(m.CreatedTime),
		CanCloseEarly:  &canClose,
		TickSize:       m.TickSize,
		StrikeType:     strPtr(m.StrikeType),
		FloorStrike:    m.FloorStrike,
		CapStrike:      m.CapStrike,
	}
}

// snapshotPayload captures the market's current prices and activity as one
// snapshot row. Integer cents pass through untouched; dollar strings are
// normalized to floats, with malformed values dropped to nil.
func snapshotPayload(marketID int64, m *api.APIMarket) model.MarketSnapshotInsert {
	return model.MarketSnapshotInsert{
		MarketID: marketID,

		YesBid:           m.YesBid,
		YesBidDollars:    parseDollars(m.YesBidDollars),
		YesAsk:           m.YesAsk,
		YesAskDollars:    parseDollars(m.YesAskDollars),
		NoBid:            m.NoBid,
		NoBidDollars:     parseDollars(m.NoBidDollars),
		NoAsk:            m.NoAsk,
		NoAskDollars:     parseDollars(m.NoAskDollars),
		LastPrice:        m.LastPrice,
		LastPriceDollars: parseDollars(m.LastPriceDollars),

		Volume:           m.Volume,
		Volume24h:        m.Volume24h,
		OpenInterest:     m.OpenInterest,
		Liquidity:        m.Liquidity,
		LiquidityDollars: parseDollars(m.LiquidityDollars),
	}
}
