package dataflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSymbol(t *testing.T) {
	valid := []string{"AAPL", "pfc", " MSFT ", "BRK.B", "700-HK", "A1"}
	for _, symbol := range valid {
		assert.NoError(t, ValidateSymbol(symbol), symbol)
	}

	invalid := []string{"", "   ", "TOOLONGSYMBOL", "AA PL", "AAPL;rm"}
	for _, symbol := range invalid {
		assert.Error(t, ValidateSymbol(symbol), "%q should be rejected", symbol)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeSymbol(" aapl "))
	assert.Equal(t, "BRK.B", NormalizeSymbol("brk.b"))
}

func TestParseDecimal(t *testing.T) {
	cases := map[string]string{
		"150.00":   "150",
		" 5.25 ":   "5.25",
		"1,234.50": "1234.5",
		"28.1%":    "28.1",
		"-3.2":     "-3.2",
	}
	for input, want := range cases {
		got := parseDecimal(input)
		require.True(t, got.Valid, "%q should parse", input)
		assert.Equal(t, want, got.Decimal.String())
	}

	for _, input := range []string{"", "-", "--", "n/a", "abc", "  "} {
		assert.False(t, parseDecimal(input).Valid, "%q should stay unset", input)
	}
}
