package agent

import (
	"strings"
	"testing"

	"github.com/papertrade/papertrade"
)

func buildTestSnapshot(t *testing.T) (*papertrade.Snapshot, *papertrade.PerformanceReport) {
	t.Helper()
	p := papertrade.NewPortfolio(papertrade.M(10000, papertrade.DefaultCurrency))
	if err := p.Buy("AAPL", papertrade.M(100, papertrade.DefaultCurrency), papertrade.Q(10)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	snap := p.Snapshot()
	report := papertrade.NewPerformanceReport(snap, papertrade.QuoteFunc(func(string) (papertrade.Money, error) {
		return papertrade.M(120, papertrade.DefaultCurrency), nil
	}))
	return snap, report
}

func TestBuildPrompt(t *testing.T) {
	snap, report := buildTestSnapshot(t)
	market := papertrade.MarketSummary{
		Gainers: []papertrade.Gainer{
			{Ticker: "NVDA", Name: "NVIDIA Corporation", Price: papertrade.M(950, "USD"), ChangePercent: 15.3},
		},
		Indices: []papertrade.IndexQuote{
			{Symbol: "^GSPC", Name: "S&P 500", Price: papertrade.M(5000, "USD"), ChangePercent: 0.5},
		},
	}

	prompt := BuildPrompt(snap, report, market)

	for _, want := range []string{
		"$9,000.00",  // cash after the buy
		"AAPL",       // the holding
		"$1,200.00",  // its market value
		"+$200.00",   // its unrealized gain
		"NVDA",       // the gainer
		"S&P 500",    // the index
		"recommendations",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt does not mention %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_EmptyPortfolio(t *testing.T) {
	p := papertrade.NewPortfolio(papertrade.M(10000, papertrade.DefaultCurrency))
	prompt := BuildPrompt(p.Snapshot(), nil, papertrade.MarketSummary{})

	if !strings.Contains(prompt, "No current holdings.") {
		t.Errorf("prompt does not state the portfolio is empty:\n%s", prompt)
	}
	if strings.Contains(prompt, "Top Gainers") {
		t.Errorf("prompt has a gainers section with no gainers:\n%s", prompt)
	}
}
