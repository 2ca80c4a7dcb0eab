package dataflows

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// GetSpotQuote returns the current market price for a symbol. The chain
// display works without it, so callers treat a failure here as a warning
// rather than aborting the run.
func GetSpotQuote(symbol string) (decimal.Decimal, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return decimal.Zero, err
	}

	symbol = NormalizeSymbol(symbol)

	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}

	return decimal.NewFromFloat(q.RegularMarketPrice), nil
}
