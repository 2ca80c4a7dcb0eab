package dataflows

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// NSEOptionsClient fetches the NSE option-chain JSON API. The API rejects
// bare requests, so the client mimics a browser: full header set plus
// warm-up visits to the home and derivatives pages to collect cookies
// before the API call.
type NSEOptionsClient struct {
	client      *resty.Client
	baseURL     string
	warmupDelay time.Duration
}

// NewNSEOptionsClient creates a new NSE option chain client
func NewNSEOptionsClient(config *Config) *NSEOptionsClient {
	client := resty.New()
	client.SetTimeout(config.HTTPTimeout())
	client.SetHeaders(map[string]string{
		"User-Agent":      config.UserAgent,
		"Accept-Language": "en-US,en;q=0.9",
		"Accept":          "application/json, text/javascript, */*; q=0.01",
	})

	return &NSEOptionsClient{
		client:      client,
		baseURL:     strings.TrimRight(config.NSEBaseURL, "/"),
		warmupDelay: 2 * time.Second,
	}
}

type nseChainResponse struct {
	Records *OptionChainData `json:"records"`
}

// GetOptionChain fetches the full option chain for an NSE equity symbol.
func (nc *NSEOptionsClient) GetOptionChain(symbol string) (*OptionChainData, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)
	referer := fmt.Sprintf("%s/get-quotes/derivatives?symbol=%s", nc.baseURL, symbol)
	apiURL := fmt.Sprintf("%s/api/option-chain-equities?symbol=%s", nc.baseURL, symbol)

	log.WithFields(log.Fields{"symbol": symbol, "url": apiURL}).Debug("fetching NSE option chain")

	// Cookie warm-up; failures here surface on the API call instead.
	if _, err := nc.client.R().Get(nc.baseURL); err == nil {
		time.Sleep(nc.warmupDelay)
	}
	if _, err := nc.client.R().Get(referer); err == nil {
		time.Sleep(nc.warmupDelay)
	}

	var payload nseChainResponse
	resp, err := nc.client.R().
		SetHeader("Referer", referer).
		SetResult(&payload).
		Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch option chain for %s: %w", symbol, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("HTTP error %d when fetching option chain for %s", resp.StatusCode(), symbol)
	}

	if payload.Records == nil {
		return nil, fmt.Errorf("option chain response for %s has no records", symbol)
	}

	return payload.Records, nil
}

// HasExpiry reports whether the chain lists the given expiry date.
func (d *OptionChainData) HasExpiry(expiry string) bool {
	for _, e := range d.ExpiryDates {
		if e == expiry {
			return true
		}
	}
	return false
}
