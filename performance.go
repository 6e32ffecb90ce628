package papertrade

import "fmt"

// SecurityPerformance values one held position against its current price.
type SecurityPerformance struct {
	Ticker         string
	Shares         Quantity
	Price          Money    // current price per share
	MarketValue    Money    // Price * Shares
	CostBasis      Money    // total cost basis of the position
	UnrealizedGain Money    // MarketValue - CostBasis
	Return         Percent  // UnrealizedGain / CostBasis
}

// PerformanceReport values a portfolio snapshot against live quotes.
//
// A ticker whose quote cannot be resolved is excluded from every aggregate
// and reported in Warnings; the remaining tickers and the cash balance are
// still valued. Warnings non-empty therefore means the totals are partial.
type PerformanceReport struct {
	Cash     Money
	Holdings []SecurityPerformance

	// Warnings lists per-ticker quote failures, one entry per symbol.
	Warnings []string

	TotalMarket        Money   // sum of market values over valued holdings
	TotalValue         Money   // Cash + TotalMarket
	ContributedCapital Money   // sum of cost bases over valued holdings
	TotalUnrealized    Money   // TotalMarket - ContributedCapital
	TotalReturn        Percent // TotalUnrealized / ContributedCapital, 0 when nothing is held
}

// NewPerformanceReport values every holding of the snapshot with prices from
// the quote provider.
func NewPerformanceReport(s *Snapshot, quotes QuoteProvider) *PerformanceReport {
	r := &PerformanceReport{
		Cash:               s.Balance,
		TotalMarket:        M(0, s.Balance.Currency()),
		ContributedCapital: M(0, s.Balance.Currency()),
	}
	for _, h := range s.Holdings {
		price, err := quotes.Price(h.Ticker)
		if err != nil {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %v", h.Ticker, err))
			continue
		}
		if c := price.Currency(); c != "" && c != s.Balance.Currency() {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: quoted in %s, account is in %s", h.Ticker, c, s.Balance.Currency()))
			continue
		}
		value := price.Mul(h.Shares)
		gain := value.Sub(h.TotalCostBasis)
		sp := SecurityPerformance{
			Ticker:         h.Ticker,
			Shares:         h.Shares,
			Price:          price,
			MarketValue:    value,
			CostBasis:      h.TotalCostBasis,
			UnrealizedGain: gain,
			// a held position always has a positive cost basis, so the
			// division below cannot be by zero.
			Return: Percent(100 * gain.AsFloat() / h.TotalCostBasis.AsFloat()),
		}
		r.Holdings = append(r.Holdings, sp)
		r.TotalMarket = r.TotalMarket.Add(value)
		r.ContributedCapital = r.ContributedCapital.Add(h.TotalCostBasis)
	}

	r.TotalValue = r.Cash.Add(r.TotalMarket)
	r.TotalUnrealized = r.TotalMarket.Sub(r.ContributedCapital)
	if r.ContributedCapital.IsZero() {
		// An empty (or fully unpriced) portfolio has a defined return of
		// zero, never a division error.
		r.TotalReturn = 0
	} else {
		r.TotalReturn = Percent(100 * r.TotalUnrealized.AsFloat() / r.ContributedCapital.AsFloat())
	}
	return r
}
