package papertrade

// QuoteProvider resolves a ticker symbol to its current price.
//
// Implementations return an error wrapping ErrQuoteUnavailable when no price
// can be resolved; a failed lookup for one ticker must not affect others.
type QuoteProvider interface {
	Price(ticker string) (Money, error)
}

// QuoteFunc adapts a function to the QuoteProvider interface.
type QuoteFunc func(ticker string) (Money, error)

func (f QuoteFunc) Price(ticker string) (Money, error) { return f(ticker) }

// Gainer is one entry of a top-gainers screen.
type Gainer struct {
	Ticker        string
	Name          string
	Price         Money
	ChangePercent Percent
}

// IndexQuote is the current level of a major market index.
type IndexQuote struct {
	Symbol        string
	Name          string
	Price         Money
	ChangePercent Percent
}

// MarketSummary is the market context handed to the advisor: the day's top
// gainers plus the levels of the major indices.
type MarketSummary struct {
	Gainers []Gainer
	Indices []IndexQuote
}

// GainersProvider discovers the day's top gaining stocks.
type GainersProvider interface {
	TopGainers(n int) ([]Gainer, error)
}
