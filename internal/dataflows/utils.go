package dataflows

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateSymbol checks if a stock symbol is valid format
func ValidateSymbol(symbol string) error {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	if len(symbol) == 0 {
		return fmt.Errorf("symbol cannot be empty")
	}
	if len(symbol) > 10 {
		return fmt.Errorf("symbol too long: %s", symbol)
	}
	for _, r := range symbol {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return fmt.Errorf("invalid character %q in symbol %s", r, symbol)
		}
	}
	return nil
}

// NormalizeSymbol converts a symbol to the canonical uppercase form
func NormalizeSymbol(symbol string) string {
	return strings.TrimSpace(strings.ToUpper(symbol))
}

// parseDecimal converts a table cell to a decimal. Thousands separators and
// percent signs are stripped first. Anything that still fails to parse
// (dashes, empty cells, placeholder text) yields an unset value instead of
// an error.
func parseDecimal(text string) decimal.NullDecimal {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSuffix(cleaned, "%")

	if cleaned == "" || cleaned == "-" || cleaned == "--" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}
}
