package dataflows

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// Number of cells a calls-table row must carry: contract name, last trade
// date, strike, last price, bid, ask, volume, open interest. Rows with
// fewer cells are skipped.
const callRowCells = 8

// YahooOptionsClient fetches and parses the Yahoo Finance options page
type YahooOptionsClient struct {
	client  *resty.Client
	baseURL string
}

// NewYahooOptionsClient creates a new options page client
func NewYahooOptionsClient(config *Config) *YahooOptionsClient {
	client := resty.New()
	client.SetTimeout(config.HTTPTimeout())
	client.SetHeader("User-Agent", config.UserAgent)

	return &YahooOptionsClient{
		client:  client,
		baseURL: strings.TrimRight(config.YahooBaseURL, "/"),
	}
}

// GetCallOptions fetches the options page for a symbol and extracts the
// call rows. A failed request or a non-200 status is a fetch error; a page
// without the calls table is a parse error. Either aborts the run.
func (yo *YahooOptionsClient) GetCallOptions(symbol string) (*OptionChain, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)
	pageURL := fmt.Sprintf("%s/quote/%s/options", yo.baseURL, symbol)

	log.WithFields(log.Fields{"symbol": symbol, "url": pageURL}).Debug("fetching options page")

	resp, err := yo.client.R().Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch options page for %s: %w", symbol, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("HTTP error %d when fetching options for %s", resp.StatusCode(), symbol)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML for %s: %w", symbol, err)
	}

	return yo.parseCallOptions(doc, symbol)
}

// parseCallOptions extracts call rows from the options page document.
// Extraction is best-effort per row: short rows are dropped and
// unparseable numeric cells stay unset. A missing calls table is the only
// fatal condition.
func (yo *YahooOptionsClient) parseCallOptions(doc *goquery.Document, symbol string) (*OptionChain, error) {
	table := doc.Find("table.calls").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no call options table found for %s", symbol)
	}

	chain := &OptionChain{
		Symbol:    symbol,
		FetchedAt: time.Now(),
		Calls:     make([]*CallOption, 0),
	}

	skipped := 0
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cells := row.Find("td")
		if cells.Length() < callRowCells {
			skipped++
			return
		}

		chain.Calls = append(chain.Calls, &CallOption{
			Expiration:   strings.TrimSpace(cells.Eq(1).Text()),
			Strike:       parseDecimal(cells.Eq(2).Text()),
			LastPrice:    parseDecimal(cells.Eq(3).Text()),
			Bid:          parseDecimal(cells.Eq(4).Text()),
			Ask:          parseDecimal(cells.Eq(5).Text()),
			Volume:       parseDecimal(cells.Eq(6).Text()),
			OpenInterest: parseDecimal(cells.Eq(7).Text()),
		})
	})

	if skipped > 0 {
		log.WithFields(log.Fields{"symbol": symbol, "skipped": skipped}).Warn("dropped malformed option rows")
	}

	return chain, nil
}
