package papertrade

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// This file persists a portfolio as a single JSON document:
//
//	{"balance": 9000, "holdings": {"AAPL": {"shares": 10, ...}}}
//
// The document is written whole after every mutation (best-effort overwrite,
// no incremental log). Field and ticker order is kept stable so the file
// diffs cleanly under version control.

// EncodePortfolio writes the portfolio snapshot document to w.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	var holdings jsonObjectWriter
	for ticker := range p.Tickers() {
		pos := p.holdings[ticker]
		var jp jsonObjectWriter
		jp.Append("shares", pos.Shares)
		jp.Append("average_cost", pos.AverageCost.Decimal())
		jp.Append("total_cost_basis", pos.TotalCostBasis.Decimal())
		jp.Optional("purchase_history", pos.PurchaseHistory)
		holdings.Append(ticker, &jp)
	}

	var root jsonObjectWriter
	root.Append("balance", p.balance.Decimal())
	root.Append("holdings", &holdings)

	data, err := root.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal portfolio: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write portfolio: %w", err)
	}
	return nil
}

// DecodePortfolio reads a portfolio snapshot document from r.
//
// A document that is not valid JSON, or that violates the accounting
// invariants (negative balance, empty or non-positive positions), is an
// ErrInvalidState failure; it is never silently repaired.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	// to parse the json, we use dedicated local structs with tag annotations.
	type jposition struct {
		Shares          Quantity        `json:"shares"`
		AverageCost     decimal.Decimal `json:"average_cost"`
		TotalCostBasis  decimal.Decimal `json:"total_cost_basis"`
		PurchaseHistory []time.Time     `json:"purchase_history"`
	}
	type jportfolio struct {
		Balance  *decimal.Decimal     `json:"balance"`
		Holdings map[string]jposition `json:"holdings"`
	}

	var jp jportfolio
	if err := json.NewDecoder(r).Decode(&jp); err != nil {
		return nil, fmt.Errorf("cannot parse portfolio snapshot: %v: %w", err, ErrInvalidState)
	}
	if jp.Balance == nil {
		return nil, fmt.Errorf("portfolio snapshot has no balance: %w", ErrInvalidState)
	}
	if jp.Balance.IsNegative() {
		return nil, fmt.Errorf("portfolio snapshot balance %s is negative: %w", jp.Balance, ErrInvalidState)
	}

	p := NewPortfolio(M(*jp.Balance, DefaultCurrency))
	for ticker, jpos := range jp.Holdings {
		if !jpos.Shares.IsPositive() {
			return nil, fmt.Errorf("position %s has %s shares: %w", ticker, jpos.Shares, ErrInvalidState)
		}
		if !jpos.AverageCost.IsPositive() || !jpos.TotalCostBasis.IsPositive() {
			return nil, fmt.Errorf("position %s has a non-positive cost basis: %w", ticker, ErrInvalidState)
		}
		if _, dup := p.holdings[Ticker(ticker)]; dup {
			return nil, fmt.Errorf("holdings contain %s twice under different spellings: %w", Ticker(ticker), ErrInvalidState)
		}
		p.holdings[Ticker(ticker)] = &Position{
			Shares:          jpos.Shares,
			AverageCost:     M(jpos.AverageCost, DefaultCurrency),
			TotalCostBasis:  M(jpos.TotalCostBasis, DefaultCurrency),
			PurchaseHistory: jpos.PurchaseHistory,
		}
	}
	return p, nil
}
