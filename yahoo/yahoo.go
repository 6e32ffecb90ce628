// Package yahoo resolves ticker symbols to current prices and discovers the
// day's top gainers using the public Yahoo Finance endpoints.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/papertrade/papertrade"
)

// Client queries the Yahoo Finance API. It satisfies both the
// papertrade.QuoteProvider and papertrade.GainersProvider contracts.
// Responses are cached on disk with a daily expiry.
type Client struct {
	http *http.Client
}

// NewClient returns a client ready for use.
func NewClient() *Client {
	return &Client{http: newDailyCachingClient()}
}

// chartResponse matches the relevant parts of the v8 chart API payload.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				Currency           string  `json:"currency"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// latestPrice extracts the current market price from a chart response.
func latestPrice(resp chartResponse) (price, previousClose float64, err error) {
	if resp.Chart.Error != nil {
		return 0, 0, fmt.Errorf("%s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return 0, 0, fmt.Errorf("no result in chart response")
	}
	meta := resp.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return 0, 0, fmt.Errorf("no market price for %q", meta.Symbol)
	}
	return meta.RegularMarketPrice, meta.PreviousClose, nil
}

func (c *Client) chart(symbol string) (chartResponse, error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d", url.PathEscape(symbol))
	var resp chartResponse
	if err := jwget(c.http, addr, &resp); err != nil {
		return chartResponse{}, err
	}
	return resp, nil
}

// quote turns a chart response into a price in the account currency. A
// security trading in another currency is reported as unavailable rather
// than mixed into the account's amounts.
func quote(resp chartResponse) (papertrade.Money, error) {
	price, _, err := latestPrice(resp)
	if err != nil {
		return papertrade.Money{}, err
	}
	currency := resp.Chart.Result[0].Meta.Currency
	if currency == "" {
		currency = papertrade.DefaultCurrency
	}
	if currency != papertrade.DefaultCurrency {
		return papertrade.Money{}, fmt.Errorf("quoted in %s, account is in %s", currency, papertrade.DefaultCurrency)
	}
	return papertrade.M(price, currency), nil
}

// Price resolves the current price of a ticker. Any failure, from transport
// errors to an unknown symbol or a foreign trading currency, wraps
// papertrade.ErrQuoteUnavailable so the performance calculator can degrade
// gracefully per ticker.
func (c *Client) Price(ticker string) (papertrade.Money, error) {
	symbol := papertrade.Ticker(ticker)
	resp, err := c.chart(symbol)
	if err != nil {
		return papertrade.Money{}, fmt.Errorf("cannot fetch quote for %s: %v: %w", symbol, err, papertrade.ErrQuoteUnavailable)
	}
	price, err := quote(resp)
	if err != nil {
		return papertrade.Money{}, fmt.Errorf("cannot read quote for %s: %v: %w", symbol, err, papertrade.ErrQuoteUnavailable)
	}
	return price, nil
}

// The major indices reported in the market overview.
var indices = []struct{ symbol, name string }{
	{"^GSPC", "S&P 500"},
	{"^DJI", "Dow Jones"},
	{"^IXIC", "Nasdaq"},
}

// IndexQuotes returns the current levels of the major indices. An index that
// cannot be fetched is skipped; the error reports the first failure only
// when no index could be fetched at all.
func (c *Client) IndexQuotes() ([]papertrade.IndexQuote, error) {
	var quotes []papertrade.IndexQuote
	var firstErr error
	for _, idx := range indices {
		resp, err := c.chart(idx.symbol)
		if err == nil {
			var price, prev float64
			price, prev, err = latestPrice(resp)
			if err == nil {
				q := papertrade.IndexQuote{
					Symbol: idx.symbol,
					Name:   idx.name,
					Price:  papertrade.M(price, papertrade.DefaultCurrency),
				}
				if prev > 0 {
					q.ChangePercent = papertrade.Percent(100 * (price - prev) / prev)
				}
				quotes = append(quotes, q)
				continue
			}
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("cannot fetch index %s: %w", idx.symbol, err)
		}
	}
	if len(quotes) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return quotes, nil
}

// MarketSummary assembles the market context for the advisor: the top n
// gainers and the major index levels.
func (c *Client) MarketSummary(n int) (papertrade.MarketSummary, error) {
	gainers, err := c.TopGainers(n)
	if err != nil {
		return papertrade.MarketSummary{}, err
	}
	// Index levels are nice to have; the summary is still useful without.
	quotes, err := c.IndexQuotes()
	if err != nil {
		quotes = nil
	}
	return papertrade.MarketSummary{Gainers: gainers, Indices: quotes}, nil
}
