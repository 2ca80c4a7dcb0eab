package dataflows

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Strike selection targets roughly 10% out of the money on either side.
var (
	otmCallFactor = decimal.NewFromFloat(1.10)
	otmPutFactor  = decimal.NewFromFloat(0.90)
)

// DefaultWatchlist is the tracked NSE equity set for the OTM premium
// report, with exchange lot sizes.
var DefaultWatchlist = []WatchlistEntry{
	{Symbol: "PGEL", Name: "PG Electroplast Ltd", LotSize: 700},
	{Symbol: "ETERNAL", Name: "Eternal Ltd", LotSize: 2450},
	{Symbol: "BAJFINANCE", Name: "Bajaj Finance Ltd", LotSize: 750},
	{Symbol: "UNITDSPR", Name: "United Spirits Ltd", LotSize: 375},
	{Symbol: "PFC", Name: "Power Finance Corporation Ltd", LotSize: 1300},
	{Symbol: "NAZARA", Name: "Nazara Technologies Ltd", LotSize: 420},
	{Symbol: "MAZDOCK", Name: "Mazagon Dock Shipbuilders Ltd", LotSize: 150},
	{Symbol: "TATACONSUM", Name: "Tata Consumer Products Ltd", LotSize: 550},
	{Symbol: "TITAN", Name: "Titan Company Ltd", LotSize: 505},
	{Symbol: "NTPC", Name: "NTPC Ltd", LotSize: 1500},
}

// OTMPremium is the ~10% out-of-the-money call/put premium summary for one
// watchlist entry at one expiry. Strike and premium fields stay unset when
// no strike qualifies on that side or the quote is missing.
type OTMPremium struct {
	Symbol     string          `json:"symbol"`
	Name       string          `json:"name"`
	LotSize    int64           `json:"lot_size"`
	Underlying decimal.Decimal `json:"underlying"`
	Expiry     string          `json:"expiry"`

	CallStrike        decimal.NullDecimal `json:"call_strike"`
	CallPremium       decimal.NullDecimal `json:"call_premium"`
	CallPremiumPerLot decimal.NullDecimal `json:"call_premium_per_lot"`

	PutStrike        decimal.NullDecimal `json:"put_strike"`
	PutPremium       decimal.NullDecimal `json:"put_premium"`
	PutPremiumPerLot decimal.NullDecimal `json:"put_premium_per_lot"`
}

// expiryStrikes returns the sorted distinct strikes quoted for an expiry.
func expiryStrikes(data *OptionChainData, expiry string) []decimal.Decimal {
	seen := make(map[string]bool)
	var strikes []decimal.Decimal
	for _, rec := range data.Data {
		if rec.ExpiryDate != expiry {
			continue
		}
		key := rec.StrikePrice.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		strikes = append(strikes, rec.StrikePrice)
	}
	sort.Slice(strikes, func(i, j int) bool {
		return strikes[i].LessThan(strikes[j])
	})
	return strikes
}

// SelectOTMStrikes picks the nearest strike at least 10% above the
// underlying for the call side and at most 10% below it for the put side.
func SelectOTMStrikes(data *OptionChainData, expiry string) (call, put decimal.NullDecimal) {
	strikes := expiryStrikes(data, expiry)
	callTarget := data.UnderlyingValue.Mul(otmCallFactor)
	putTarget := data.UnderlyingValue.Mul(otmPutFactor)

	for _, s := range strikes {
		if s.GreaterThanOrEqual(callTarget) {
			call = decimal.NullDecimal{Decimal: s, Valid: true}
			break
		}
	}
	for i := len(strikes) - 1; i >= 0; i-- {
		if strikes[i].LessThanOrEqual(putTarget) {
			put = decimal.NullDecimal{Decimal: strikes[i], Valid: true}
			break
		}
	}
	return call, put
}

// quoteAt finds the call or put quote for an exact strike/expiry pair.
func quoteAt(data *OptionChainData, expiry string, strike decimal.Decimal, call bool) *OptionQuote {
	for _, rec := range data.Data {
		if rec.ExpiryDate != expiry || !rec.StrikePrice.Equal(strike) {
			continue
		}
		if call {
			return rec.CE
		}
		return rec.PE
	}
	return nil
}

// OTMPremiums computes the OTM premium summary for one watchlist entry.
func OTMPremiums(entry WatchlistEntry, data *OptionChainData, expiry string) *OTMPremium {
	result := &OTMPremium{
		Symbol:     entry.Symbol,
		Name:       entry.Name,
		LotSize:    entry.LotSize,
		Underlying: data.UnderlyingValue,
		Expiry:     expiry,
	}

	lot := decimal.NewFromInt(entry.LotSize)
	callStrike, putStrike := SelectOTMStrikes(data, expiry)

	if callStrike.Valid {
		result.CallStrike = callStrike
		if q := quoteAt(data, expiry, callStrike.Decimal, true); q != nil {
			result.CallPremium = decimal.NullDecimal{Decimal: q.LastPrice, Valid: true}
			result.CallPremiumPerLot = decimal.NullDecimal{Decimal: q.LastPrice.Mul(lot), Valid: true}
		}
	}

	if putStrike.Valid {
		result.PutStrike = putStrike
		if q := quoteAt(data, expiry, putStrike.Decimal, false); q != nil {
			result.PutPremium = decimal.NullDecimal{Decimal: q.LastPrice, Valid: true}
			result.PutPremiumPerLot = decimal.NullDecimal{Decimal: q.LastPrice.Mul(lot), Valid: true}
		}
	}

	return result
}
