package yahoo

import (
	"encoding/json"
	"testing"

	"github.com/papertrade/papertrade"
)

const chartFixture = `{
  "chart": {
    "result": [
      {
        "meta": {
          "currency": "USD",
          "symbol": "AAPL",
          "regularMarketPrice": 189.46,
          "chartPreviousClose": 185.0
        }
      }
    ],
    "error": null
  }
}`

const chartEURFixture = `{
  "chart": {
    "result": [
      {
        "meta": {
          "currency": "EUR",
          "symbol": "BMW.DE",
          "regularMarketPrice": 88.12,
          "chartPreviousClose": 87.3
        }
      }
    ],
    "error": null
  }
}`

const chartErrorFixture = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func TestLatestPrice(t *testing.T) {
	var resp chartResponse
	if err := json.Unmarshal([]byte(chartFixture), &resp); err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}

	price, prev, err := latestPrice(resp)
	if err != nil {
		t.Fatalf("latestPrice() failed: %v", err)
	}
	if price != 189.46 {
		t.Errorf("price = %v, want 189.46", price)
	}
	if prev != 185.0 {
		t.Errorf("previous close = %v, want 185.0", prev)
	}
}

func TestLatestPrice_APIError(t *testing.T) {
	var resp chartResponse
	if err := json.Unmarshal([]byte(chartErrorFixture), &resp); err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	if _, _, err := latestPrice(resp); err == nil {
		t.Error("latestPrice() succeeded on an error payload")
	}
}

func TestLatestPrice_EmptyResult(t *testing.T) {
	var resp chartResponse
	if _, _, err := latestPrice(resp); err == nil {
		t.Error("latestPrice() succeeded on empty response")
	}
}

func TestQuote(t *testing.T) {
	var resp chartResponse
	if err := json.Unmarshal([]byte(chartFixture), &resp); err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	price, err := quote(resp)
	if err != nil {
		t.Fatalf("quote() failed: %v", err)
	}
	if want := papertrade.M(189.46, papertrade.DefaultCurrency); !price.Equal(want) {
		t.Errorf("quote() = %s, want %s", price, want)
	}
}

// A security trading in another currency must never reach the account's
// amounts; it is unavailable, not convertible.
func TestQuote_ForeignCurrency(t *testing.T) {
	var resp chartResponse
	if err := json.Unmarshal([]byte(chartEURFixture), &resp); err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	if _, err := quote(resp); err == nil {
		t.Error("quote() accepted a EUR quote for a USD account")
	}
}

const screenerFixture = `{
  "finance": {
    "result": [
      {
        "quotes": [
          {
            "symbol": "nvda",
            "shortName": "NVIDIA Corporation",
            "regularMarketPrice": 950.02,
            "regularMarketChangePercent": 15.3
          },
          {
            "symbol": "AMD",
            "longName": "Advanced Micro Devices, Inc.",
            "regularMarketPrice": {"raw": 170.5, "fmt": "170.50"},
            "regularMarketChangePercent": {"raw": 9.1, "fmt": "9.10%"}
          },
          {"shortName": "bogus entry without symbol"}
        ]
      }
    ],
    "error": null
  }
}`

func TestParseGainers(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(screenerFixture), &jobj); err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}

	gainers, err := parseGainers(jobj)
	if err != nil {
		t.Fatalf("parseGainers() failed: %v", err)
	}
	if len(gainers) != 2 {
		t.Fatalf("got %d gainers, want 2 (entry without symbol skipped)", len(gainers))
	}

	nvda := gainers[0]
	if nvda.Ticker != "NVDA" {
		t.Errorf("ticker = %q, want NVDA (normalized)", nvda.Ticker)
	}
	if nvda.Name != "NVIDIA Corporation" {
		t.Errorf("name = %q", nvda.Name)
	}
	if nvda.Price.AsFloat() != 950.02 {
		t.Errorf("price = %v, want 950.02", nvda.Price.AsFloat())
	}

	// The second entry uses the {"raw": ...} field shape.
	amd := gainers[1]
	if amd.Price.AsFloat() != 170.5 {
		t.Errorf("AMD price = %v, want 170.5", amd.Price.AsFloat())
	}
	if !amd.ChangePercent.Equal(9.1) {
		t.Errorf("AMD change = %v, want 9.1%%", amd.ChangePercent)
	}
	if amd.Name != "Advanced Micro Devices, Inc." {
		t.Errorf("AMD name = %q, want the longName fallback", amd.Name)
	}
}

func TestParseGainers_BadPayload(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"finance":{"result":[]}}`), &jobj); err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	if _, err := parseGainers(jobj); err == nil {
		t.Error("parseGainers() succeeded on payload without quotes")
	}
}
