package papertrade

import (
	"fmt"
	"strings"
	"testing"
)

// fakeQuotes is a map-backed quote provider for tests. Tickers absent from
// the map are unavailable.
type fakeQuotes map[string]float64

func (f fakeQuotes) Price(ticker string) (Money, error) {
	v, ok := f[ticker]
	if !ok {
		return Money{}, fmt.Errorf("no quote for %s: %w", ticker, ErrQuoteUnavailable)
	}
	return M(v, DefaultCurrency), nil
}

// setupValuedPortfolio builds a portfolio holding AAPL (10 @ $100) and
// MSFT (5 @ $200) out of a $10,000 deposit.
func setupValuedPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p := NewPortfolio(usd(10000))
	if err := p.Buy("AAPL", usd(100), Q(10)); err != nil {
		t.Fatalf("Buy(AAPL) failed: %v", err)
	}
	if err := p.Buy("MSFT", usd(200), Q(5)); err != nil {
		t.Fatalf("Buy(MSFT) failed: %v", err)
	}
	return p
}

func TestPerformanceReport(t *testing.T) {
	p := setupValuedPortfolio(t)
	// cash is now 10000 - 1000 - 1000 = 8000

	r := NewPerformanceReport(p.Snapshot(), fakeQuotes{"AAPL": 120, "MSFT": 180})

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", r.Warnings)
	}
	if len(r.Holdings) != 2 {
		t.Fatalf("report has %d holdings, want 2", len(r.Holdings))
	}

	aapl := r.Holdings[0]
	if aapl.Ticker != "AAPL" {
		t.Fatalf("first holding is %s, want AAPL", aapl.Ticker)
	}
	if !aapl.MarketValue.Equal(usd(1200)) {
		t.Errorf("AAPL market value = %s, want $1,200.00", aapl.MarketValue)
	}
	if !aapl.UnrealizedGain.Equal(usd(200)) {
		t.Errorf("AAPL unrealized = %s, want $200.00", aapl.UnrealizedGain)
	}
	if want := Percent(20); !aapl.Return.Equal(want) {
		t.Errorf("AAPL return = %s, want %s", aapl.Return, want)
	}

	msft := r.Holdings[1]
	if !msft.UnrealizedGain.Equal(usd(-100)) {
		t.Errorf("MSFT unrealized = %s, want -$100.00", msft.UnrealizedGain)
	}
	if want := Percent(-10); !msft.Return.Equal(want) {
		t.Errorf("MSFT return = %s, want %s", msft.Return, want)
	}

	if !r.TotalMarket.Equal(usd(2100)) {
		t.Errorf("total market = %s, want $2,100.00", r.TotalMarket)
	}
	if !r.TotalValue.Equal(usd(10100)) {
		t.Errorf("total value = %s, want $10,100.00", r.TotalValue)
	}
	if !r.ContributedCapital.Equal(usd(2000)) {
		t.Errorf("contributed capital = %s, want $2,000.00", r.ContributedCapital)
	}
	if want := Percent(5); !r.TotalReturn.Equal(want) {
		t.Errorf("total return = %s, want %s", r.TotalReturn, want)
	}
}

func TestPerformanceReport_PartialQuoteFailure(t *testing.T) {
	p := setupValuedPortfolio(t)

	// MSFT has no quote: it must be excluded from every aggregate while AAPL
	// and cash still report correctly.
	r := NewPerformanceReport(p.Snapshot(), fakeQuotes{"AAPL": 120})

	if len(r.Warnings) != 1 || !strings.HasPrefix(r.Warnings[0], "MSFT:") {
		t.Fatalf("warnings = %v, want a single MSFT warning", r.Warnings)
	}
	if len(r.Holdings) != 1 || r.Holdings[0].Ticker != "AAPL" {
		t.Fatalf("valued holdings = %v, want AAPL only", r.Holdings)
	}
	if !r.TotalMarket.Equal(usd(1200)) {
		t.Errorf("total market = %s, want $1,200.00 (AAPL only)", r.TotalMarket)
	}
	if !r.ContributedCapital.Equal(usd(1000)) {
		t.Errorf("contributed capital = %s, want $1,000.00 (AAPL only)", r.ContributedCapital)
	}
	if !r.TotalValue.Equal(usd(9200)) {
		t.Errorf("total value = %s, want cash $8,000.00 + AAPL $1,200.00", r.TotalValue)
	}
}

func TestPerformanceReport_ForeignCurrencyQuote(t *testing.T) {
	p := setupValuedPortfolio(t)

	// A provider quoting MSFT in another currency must degrade exactly like
	// a failed quote, never mix currencies into the aggregates.
	quotes := QuoteFunc(func(ticker string) (Money, error) {
		if ticker == "MSFT" {
			return M(150, "EUR"), nil
		}
		return usd(120), nil
	})
	r := NewPerformanceReport(p.Snapshot(), quotes)

	if len(r.Warnings) != 1 || !strings.HasPrefix(r.Warnings[0], "MSFT:") {
		t.Fatalf("warnings = %v, want a single MSFT warning", r.Warnings)
	}
	if len(r.Holdings) != 1 || r.Holdings[0].Ticker != "AAPL" {
		t.Fatalf("valued holdings = %v, want AAPL only", r.Holdings)
	}
	if !r.TotalValue.Equal(usd(9200)) {
		t.Errorf("total value = %s, want cash $8,000.00 + AAPL $1,200.00", r.TotalValue)
	}
}

func TestPerformanceReport_EmptyHoldings(t *testing.T) {
	p := NewPortfolio(usd(10000))
	r := NewPerformanceReport(p.Snapshot(), fakeQuotes{})

	if r.TotalReturn != 0 {
		t.Errorf("total return = %s, want 0 for empty holdings", r.TotalReturn)
	}
	if !r.TotalValue.Equal(usd(10000)) {
		t.Errorf("total value = %s, want the cash balance", r.TotalValue)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestPerformanceReport_AllQuotesUnavailable(t *testing.T) {
	p := setupValuedPortfolio(t)
	r := NewPerformanceReport(p.Snapshot(), fakeQuotes{})

	if len(r.Warnings) != 2 {
		t.Fatalf("warnings = %v, want one per ticker", r.Warnings)
	}
	// Nothing valued: defined return of zero, not a division error.
	if r.TotalReturn != 0 {
		t.Errorf("total return = %s, want 0", r.TotalReturn)
	}
	if !r.TotalValue.Equal(usd(8000)) {
		t.Errorf("total value = %s, want the cash balance", r.TotalValue)
	}
}
