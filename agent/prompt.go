package agent

import (
	"fmt"
	"strings"

	"github.com/papertrade/papertrade"
)

// BuildPrompt renders the portfolio and market context into the markdown
// prompt sent to the model. It is separated from the API call so the prompt
// content can be tested offline.
func BuildPrompt(snap *papertrade.Snapshot, report *papertrade.PerformanceReport, market papertrade.MarketSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Current Portfolio\n\n")
	fmt.Fprintf(&b, "Cash balance: %s\n\n", snap.Balance)
	if len(snap.Holdings) == 0 {
		fmt.Fprintln(&b, "No current holdings.")
	} else {
		fmt.Fprintln(&b, "| Ticker | Shares | Average Cost | Market Value | Unrealized |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, h := range snap.Holdings {
			value, unrealized := "n/a", "n/a"
			if report != nil {
				for _, sp := range report.Holdings {
					if sp.Ticker == h.Ticker {
						value = sp.MarketValue.String()
						unrealized = sp.UnrealizedGain.SignedString()
						break
					}
				}
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", h.Ticker, h.Shares, h.AverageCost, value, unrealized)
		}
	}

	if len(market.Gainers) > 0 {
		fmt.Fprintf(&b, "\n# Today's Top Gainers\n\n")
		fmt.Fprintln(&b, "| Ticker | Name | Price | Change |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|")
		for _, g := range market.Gainers {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", g.Ticker, g.Name, g.Price, g.ChangePercent.SignedString())
		}
	}
	if len(market.Indices) > 0 {
		fmt.Fprintf(&b, "\n# Major Indices\n\n")
		for _, idx := range market.Indices {
			fmt.Fprintf(&b, "- %s (%s): %s (%s)\n", idx.Name, idx.Symbol, idx.Price, idx.ChangePercent.SignedString())
		}
	}

	fmt.Fprintf(&b, `
Provide strategic investment recommendations:
1. Evaluate potential buy/sell/hold decisions for current holdings.
2. Consider portfolio diversification.
3. Highlight opportunities based on the market trends above.
4. Give a concise rationale for each recommendation.
`)
	return b.String()
}
