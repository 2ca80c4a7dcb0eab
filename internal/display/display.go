// Package display renders option chains and premium reports for the console.
package display

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/dyike/OptionsGo/internal/dataflows"
)

// ChainPresenter writes fetched option data to a console writer.
type ChainPresenter struct {
	out io.Writer
}

// NewChainPresenter creates a presenter writing to out
func NewChainPresenter(out io.Writer) *ChainPresenter {
	return &ChainPresenter{out: out}
}

// Render prints the call options of a chain in fixed column order. Decimal
// values are printed with their exact string form, so nothing is lost
// between extraction and display.
func (p *ChainPresenter) Render(chain *dataflows.OptionChain) {
	fmt.Fprintf(p.out, "Call options for %s (%d contracts)\n", chain.Symbol, len(chain.Calls))
	if chain.Spot.Valid {
		fmt.Fprintf(p.out, "Underlying price: %s\n", chain.Spot.Decimal.String())
	}

	if len(chain.Calls) == 0 {
		fmt.Fprintln(p.out, "No call contracts listed.")
		return
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Expiration", "Strike", "Last", "Bid", "Ask", "Volume", "Open Int"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, call := range chain.Calls {
		table.Append([]string{
			call.Expiration,
			formatNullDecimal(call.Strike),
			formatNullDecimal(call.LastPrice),
			formatNullDecimal(call.Bid),
			formatNullDecimal(call.Ask),
			formatNullDecimal(call.Volume),
			formatNullDecimal(call.OpenInterest),
		})
	}

	table.Render()
}

// RenderPremiums prints the OTM premium report for a set of watchlist
// entries at one expiry.
func (p *ChainPresenter) RenderPremiums(expiry string, premiums []*dataflows.OTMPremium) {
	fmt.Fprintf(p.out, "~10%% OTM call/put premiums for expiry %s\n", expiry)

	if len(premiums) == 0 {
		fmt.Fprintln(p.out, "No data for any watchlist symbol.")
		return
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{
		"Symbol", "Spot", "Lot",
		"Call Strike", "Call LTP", "Call/Lot",
		"Put Strike", "Put LTP", "Put/Lot",
	})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, pr := range premiums {
		table.Append([]string{
			pr.Symbol,
			pr.Underlying.String(),
			fmt.Sprintf("%d", pr.LotSize),
			formatNullDecimal(pr.CallStrike),
			formatNullDecimal(pr.CallPremium),
			formatNullDecimal(pr.CallPremiumPerLot),
			formatNullDecimal(pr.PutStrike),
			formatNullDecimal(pr.PutPremium),
			formatNullDecimal(pr.PutPremiumPerLot),
		})
	}

	table.Render()
}

func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.String()
}
