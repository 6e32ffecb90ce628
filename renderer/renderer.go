// Package renderer turns portfolio views into markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/papertrade/papertrade"
)

// Holding renders the portfolio snapshot: cash balance and positions.
func Holding(s *papertrade.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintf(&b, "Cash balance: **%s**\n\n", s.Balance)

	if len(s.Holdings) == 0 {
		fmt.Fprintln(&b, "No current holdings.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Shares | Average Cost | Cost Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, h := range s.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", h.Ticker, h.Shares, h.AverageCost, h.TotalCostBasis)
	}
	return b.String()
}

// Gains renders a performance report: per-ticker valuation, totals, and the
// warnings for tickers that could not be priced.
func Gains(r *papertrade.PerformanceReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Performance\n\n")

	if len(r.Holdings) > 0 {
		fmt.Fprintln(&b, "| Ticker | Shares | Price | Market Value | Cost Basis | Unrealized | Return |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
		for _, sp := range r.Holdings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				sp.Ticker, sp.Shares, sp.Price, sp.MarketValue, sp.CostBasis,
				sp.UnrealizedGain.SignedString(), sp.Return.SignedString())
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "- Cash: %s\n", r.Cash)
	fmt.Fprintf(&b, "- Market value: %s\n", r.TotalMarket)
	fmt.Fprintf(&b, "- Total value: **%s**\n", r.TotalValue)
	fmt.Fprintf(&b, "- Unrealized gains: %s (%s on %s invested)\n",
		r.TotalUnrealized.SignedString(), r.TotalReturn.SignedString(), r.ContributedCapital)

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "\n> [!WARNING]\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "> %s\n", w)
		}
	}
	return b.String()
}

// Gainers renders a top-gainers listing.
func Gainers(gainers []papertrade.Gainer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Top Gainers\n\n")
	if len(gainers) == 0 {
		fmt.Fprintln(&b, "No gainers available at the moment.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Ticker | Name | Price | Change |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, g := range gainers {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", g.Ticker, g.Name, g.Price, g.ChangePercent.SignedString())
	}
	return b.String()
}
