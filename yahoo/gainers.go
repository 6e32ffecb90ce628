package yahoo

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/papertrade/papertrade"
)

// TopGainers returns the day's top n gaining stocks from Yahoo's predefined
// screener.
func (c *Client) TopGainers(n int) ([]papertrade.Gainer, error) {
	if n <= 0 {
		n = 5
	}
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v1/finance/screener/predefined/saved?scrIds=day_gainers&count=%d", n)

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch top gainers: %w", err)
	}
	gainers, err := parseGainers(jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot parse top gainers: %w", err)
	}
	if len(gainers) > n {
		gainers = gainers[:n]
	}
	return gainers, nil
}

// parseGainers extracts the quotes list from a screener response.
func parseGainers(jobj any) ([]papertrade.Gainer, error) {
	path := "$.finance.result[0].quotes"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("no quotes at %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("quotes at %q are not a list", path)
	}

	var gainers []papertrade.Gainer
	for _, jq := range jlist {
		quote, ok := jq.(map[string]any)
		if !ok {
			continue
		}
		symbol, ok := quote["symbol"].(string)
		if !ok || symbol == "" {
			continue
		}
		g := papertrade.Gainer{Ticker: papertrade.Ticker(symbol)}
		if name, ok := quote["shortName"].(string); ok {
			g.Name = name
		} else if name, ok := quote["longName"].(string); ok {
			g.Name = name
		}
		if price, ok := number(quote["regularMarketPrice"]); ok {
			g.Price = papertrade.M(price, papertrade.DefaultCurrency)
		}
		if change, ok := number(quote["regularMarketChangePercent"]); ok {
			g.ChangePercent = papertrade.Percent(change)
		}
		gainers = append(gainers, g)
	}
	return gainers, nil
}

// number reads a numeric screener field. Depending on the endpoint mood the
// value is either a plain number or a {"raw": n, "fmt": "..."} object.
func number(jval any) (float64, bool) {
	switch v := jval.(type) {
	case float64:
		return v, true
	case map[string]any:
		raw, ok := v["raw"].(float64)
		return raw, ok
	default:
		return 0, false
	}
}
