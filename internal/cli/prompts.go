package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.-]+$`)

// PromptForTicker prompts the user to enter a stock ticker symbol. The
// validator re-prompts until the input is a non-empty, well-formed symbol,
// so callers never see an empty ticker.
func PromptForTicker() (string, error) {
	var ticker string
	prompt := &survey.Input{
		Message: "Enter the stock ticker symbol (e.g., AAPL, MSFT, GOOGL):",
		Help:    "The symbol whose call-option chain should be fetched",
	}

	err := survey.AskOne(prompt, &ticker, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(strings.ToUpper(val.(string)))
		if len(str) == 0 {
			return fmt.Errorf("ticker symbol cannot be empty")
		}
		if len(str) > 10 {
			return fmt.Errorf("ticker symbol too long (max 10 characters)")
		}
		if !tickerPattern.MatchString(str) {
			return fmt.Errorf("invalid ticker format (use letters, numbers, dots, and hyphens only)")
		}
		return nil
	}))

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.ToUpper(ticker)), nil
}

// PromptForExpiry prompts for an NSE expiry date in DD-Mon-YYYY form
func PromptForExpiry() (string, error) {
	var expiry string
	prompt := &survey.Input{
		Message: "Enter NSE expiry date (e.g. 30-Sep-2025):",
		Help:    "Format: DD-Mon-YYYY, matching the expiry dates listed by NSE",
	}

	err := survey.AskOne(prompt, &expiry, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if str == "" {
			return fmt.Errorf("expiry date cannot be empty")
		}
		if _, err := time.Parse("02-Jan-2006", str); err != nil {
			return fmt.Errorf("invalid date format, use DD-Mon-YYYY (e.g. 30-Sep-2025)")
		}
		return nil
	}))

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(expiry), nil
}
