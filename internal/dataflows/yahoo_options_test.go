package dataflows

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionsPage(rows string) string {
	return fmt.Sprintf(`<html><body>
<table class="calls">
<tr><th>Contract</th><th>Last Trade Date</th><th>Strike</th><th>Last Price</th><th>Bid</th><th>Ask</th><th>Volume</th><th>Open Interest</th></tr>
%s
</table>
</body></html>`, rows)
}

func callRow(expiration, strike, last, bid, ask, volume, oi string) string {
	return fmt.Sprintf(
		"<tr><td>AAPL250919C00150000</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
		expiration, strike, last, bid, ask, volume, oi)
}

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func testClient(baseURL string) *YahooOptionsClient {
	cfg := &Config{
		YahooBaseURL:       baseURL,
		UserAgent:          "OptionsGo test",
		HTTPTimeoutSeconds: 5,
	}
	return NewYahooOptionsClient(cfg)
}

func TestParseCallOptions_SingleRow(t *testing.T) {
	page := optionsPage(callRow("2025-09-19", "150.00", "5.25", "5.10", "5.40", "100", "500"))
	client := testClient("http://example.invalid")

	chain, err := client.parseCallOptions(docFromHTML(t, page), "AAPL")
	require.NoError(t, err)
	require.Len(t, chain.Calls, 1)

	call := chain.Calls[0]
	assert.Equal(t, "2025-09-19", call.Expiration)

	for name, got := range map[string]decimal.NullDecimal{
		"strike":        call.Strike,
		"last price":    call.LastPrice,
		"bid":           call.Bid,
		"ask":           call.Ask,
		"volume":        call.Volume,
		"open interest": call.OpenInterest,
	} {
		assert.True(t, got.Valid, "%s should be set", name)
	}

	assert.True(t, call.Strike.Decimal.Equal(decimal.NewFromFloat(150.00)))
	assert.True(t, call.LastPrice.Decimal.Equal(decimal.NewFromFloat(5.25)))
	assert.True(t, call.Bid.Decimal.Equal(decimal.NewFromFloat(5.10)))
	assert.True(t, call.Ask.Decimal.Equal(decimal.NewFromFloat(5.40)))
	assert.True(t, call.Volume.Decimal.Equal(decimal.NewFromInt(100)))
	assert.True(t, call.OpenInterest.Decimal.Equal(decimal.NewFromInt(500)))
}

func TestParseCallOptions_PreservesRowOrder(t *testing.T) {
	rows := callRow("2025-09-19", "145.00", "8.10", "8.00", "8.20", "50", "120") +
		callRow("2025-09-19", "150.00", "5.25", "5.10", "5.40", "100", "500") +
		callRow("2025-09-19", "155.00", "3.05", "2.95", "3.15", "75", "340")
	client := testClient("http://example.invalid")

	chain, err := client.parseCallOptions(docFromHTML(t, optionsPage(rows)), "AAPL")
	require.NoError(t, err)
	require.Len(t, chain.Calls, 3)

	strikes := []string{"145", "150", "155"}
	for i, want := range strikes {
		assert.Equal(t, want, chain.Calls[i].Strike.Decimal.String())
	}
}

func TestParseCallOptions_SkipsShortRows(t *testing.T) {
	rows := callRow("2025-09-19", "145.00", "8.10", "8.00", "8.20", "50", "120") +
		"<tr><td>AAPL250919C00150000</td><td>2025-09-19</td><td>150.00</td><td>5.25</td></tr>" +
		callRow("2025-09-19", "155.00", "3.05", "2.95", "3.15", "75", "340")
	client := testClient("http://example.invalid")

	chain, err := client.parseCallOptions(docFromHTML(t, optionsPage(rows)), "AAPL")
	require.NoError(t, err)
	require.Len(t, chain.Calls, 2)
	assert.Equal(t, "145", chain.Calls[0].Strike.Decimal.String())
	assert.Equal(t, "155", chain.Calls[1].Strike.Decimal.String())
}

func TestParseCallOptions_EmptyTable(t *testing.T) {
	client := testClient("http://example.invalid")

	chain, err := client.parseCallOptions(docFromHTML(t, optionsPage("")), "AAPL")
	require.NoError(t, err)
	assert.Empty(t, chain.Calls)
}

func TestParseCallOptions_MissingTable(t *testing.T) {
	page := `<html><body><p>No options data available</p></body></html>`
	client := testClient("http://example.invalid")

	_, err := client.parseCallOptions(docFromHTML(t, page), "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no call options table")
}

func TestParseCallOptions_UnparseableCellsStayUnset(t *testing.T) {
	rows := callRow("2025-09-19", "150.00", "-", "", "5.40", "n/a", "1,234")
	client := testClient("http://example.invalid")

	chain, err := client.parseCallOptions(docFromHTML(t, optionsPage(rows)), "AAPL")
	require.NoError(t, err)
	require.Len(t, chain.Calls, 1)

	call := chain.Calls[0]
	assert.False(t, call.LastPrice.Valid)
	assert.False(t, call.Bid.Valid)
	assert.False(t, call.Volume.Valid)
	assert.True(t, call.Ask.Valid)
	require.True(t, call.OpenInterest.Valid)
	assert.Equal(t, "1234", call.OpenInterest.Decimal.String())
}

func TestGetCallOptions_FetchesAndParses(t *testing.T) {
	page := optionsPage(callRow("2025-09-19", "150.00", "5.25", "5.10", "5.40", "100", "500"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote/AAPL/options", r.URL.Path)
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	chain, err := testClient(srv.URL).GetCallOptions("aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", chain.Symbol)
	assert.False(t, chain.FetchedAt.IsZero())
	require.Len(t, chain.Calls, 1)
}

func TestGetCallOptions_NotFoundIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCallOptions("AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error 404")
}

func TestGetCallOptions_RejectsEmptySymbol(t *testing.T) {
	fetched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched = true
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCallOptions("  ")
	require.Error(t, err)
	assert.False(t, fetched, "no request should be made for an empty symbol")
}
