package cli

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dyike/OptionsGo/internal/config"
	"github.com/dyike/OptionsGo/internal/dataflows"
	"github.com/dyike/OptionsGo/internal/display"
)

// NewRootCmd creates the root command. Running it with no subcommand is the
// interactive call-chain flow: prompt for a ticker, fetch its options page,
// print the extracted calls.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "optionsgo",
		Short:        "Fetch and display stock option chains",
		Long:         "OptionsGo prompts for a ticker, fetches its options page, and prints the call-option chain.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCallChain()
		},
	}

	rootCmd.AddCommand(newOTMCmd())

	return rootCmd
}

// newOTMCmd creates the OTM premium report command
func newOTMCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "otm",
		Short:        "Report ~10% OTM call/put premiums for the NSE watchlist",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOTMReport()
		},
	}
}

func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// runCallChain is the single-pass pipeline: prompt, fetch, parse, present.
func runCallChain() error {
	cfg := config.DefaultConfig()
	setupLogging(cfg)

	DisplayWelcomeBanner()

	ticker, err := PromptForTicker()
	if err != nil {
		return fmt.Errorf("failed to read ticker: %w", err)
	}

	client := dataflows.NewYahooOptionsClient(cfg)
	chain, err := client.GetCallOptions(ticker)
	if err != nil {
		DisplayError(err.Error())
		return err
	}

	// The spot quote is decoration; the chain prints without it.
	if spot, err := dataflows.GetSpotQuote(ticker); err != nil {
		DisplayWarning(fmt.Sprintf("spot quote unavailable: %v", err))
	} else {
		chain.Spot = decimal.NullDecimal{Decimal: spot, Valid: true}
	}

	display.NewChainPresenter(os.Stdout).Render(chain)

	return nil
}

// runOTMReport fetches the NSE option chain for every watchlist entry and
// prints the ~10% OTM premium summary for the chosen expiry. A symbol that
// fails to fetch or lacks the expiry is reported and skipped.
func runOTMReport() error {
	cfg := config.DefaultConfig()
	setupLogging(cfg)

	DisplayWelcomeBanner()

	expiry, err := PromptForExpiry()
	if err != nil {
		return fmt.Errorf("failed to read expiry: %w", err)
	}

	client := dataflows.NewNSEOptionsClient(cfg)

	var premiums []*dataflows.OTMPremium
	for _, entry := range dataflows.DefaultWatchlist {
		data, err := client.GetOptionChain(entry.Symbol)
		if err != nil {
			DisplayWarning(fmt.Sprintf("%s (%s): %v", entry.Name, entry.Symbol, err))
			continue
		}

		if !data.HasExpiry(expiry) {
			DisplayWarning(fmt.Sprintf("%s (%s): expiry %s not listed, skipping", entry.Name, entry.Symbol, expiry))
			continue
		}

		premiums = append(premiums, dataflows.OTMPremiums(entry, data, expiry))
	}

	display.NewChainPresenter(os.Stdout).RenderPremiums(expiry, premiums)

	return nil
}
