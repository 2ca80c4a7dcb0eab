package dataflows

import (
	"time"

	"github.com/dyike/OptionsGo/internal/config"
	"github.com/shopspring/decimal"
)

// Config is an alias for the main application config
type Config = config.Config

// CallOption is one row of the calls table. Numeric fields stay unset
// (Valid=false) when the source cell is not a parseable number; the raw
// table order is preserved by the containing chain.
type CallOption struct {
	Expiration   string              `json:"expiration"`
	Strike       decimal.NullDecimal `json:"strike"`
	LastPrice    decimal.NullDecimal `json:"last_price"`
	Bid          decimal.NullDecimal `json:"bid"`
	Ask          decimal.NullDecimal `json:"ask"`
	Volume       decimal.NullDecimal `json:"volume"`
	OpenInterest decimal.NullDecimal `json:"open_interest"`
}

// OptionChain is the ordered set of call options extracted for one symbol
// in one fetch. It is never merged with data from other runs.
type OptionChain struct {
	Symbol    string              `json:"symbol"`
	Spot      decimal.NullDecimal `json:"spot,omitempty"`
	FetchedAt time.Time           `json:"fetched_at"`
	Calls     []*CallOption       `json:"calls"`
}

// OptionQuote is one side (CE or PE) of an NSE option-chain record.
type OptionQuote struct {
	LastPrice         decimal.Decimal `json:"lastPrice"`
	OpenInterest      decimal.Decimal `json:"openInterest"`
	ImpliedVolatility decimal.Decimal `json:"impliedVolatility"`
}

// OptionRecord is one strike/expiry entry in the NSE option chain payload.
type OptionRecord struct {
	StrikePrice decimal.Decimal `json:"strikePrice"`
	ExpiryDate  string          `json:"expiryDate"`
	CE          *OptionQuote    `json:"CE,omitempty"`
	PE          *OptionQuote    `json:"PE,omitempty"`
}

// OptionChainData mirrors the "records" object of the NSE
// option-chain-equities response.
type OptionChainData struct {
	ExpiryDates     []string        `json:"expiryDates"`
	UnderlyingValue decimal.Decimal `json:"underlyingValue"`
	Data            []*OptionRecord `json:"data"`
}

// WatchlistEntry is one tracked equity for the OTM premium report.
type WatchlistEntry struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	LotSize int64  `json:"lot_size"`
}
