package papertrade

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"time"
)

// DefaultCurrency is the currency of the simulated account.
const DefaultCurrency = "USD"

// DefaultStartingBalance is the cash a fresh account starts with.
var DefaultStartingBalance = M(10000, DefaultCurrency)

// Position is the holding of a single ticker with a blended average cost
// basis. Shares is always positive while the position exists; the portfolio
// removes a position the moment it reaches zero shares.
//
// AverageCost and TotalCostBasis are recomputed together, never
// independently: TotalCostBasis equals Shares times AverageCost at all times.
type Position struct {
	Shares         Quantity
	AverageCost    Money
	TotalCostBasis Money

	// PurchaseHistory records one timestamp per buy, for audit only.
	// It plays no role in cost basis or gains math.
	PurchaseHistory []time.Time
}

// Portfolio is a single-user paper-trading account: a cash balance and the
// positions bought with it. All mutating operations validate first and
// mutate after, so a failed call never leaves partial state behind.
//
// A Portfolio is not safe for concurrent use; callers own its lifecycle and
// persist it through a Store after each successful mutation.
type Portfolio struct {
	balance  Money
	holdings map[string]*Position
}

// NewPortfolio creates an empty portfolio with the given starting balance.
func NewPortfolio(startingBalance Money) *Portfolio {
	return &Portfolio{
		balance:  startingBalance,
		holdings: make(map[string]*Position),
	}
}

// Balance returns the current cash balance.
func (p *Portfolio) Balance() Money { return p.balance }

// Ticker normalizes a ticker symbol to its canonical upper-case form.
func Ticker(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Position returns a copy of the position held for a ticker.
func (p *Portfolio) Position(ticker string) (Position, bool) {
	pos, ok := p.holdings[Ticker(ticker)]
	if !ok {
		return Position{}, false
	}
	cp := *pos
	cp.PurchaseHistory = slices.Clone(pos.PurchaseHistory)
	return cp, true
}

// Tickers iterates over held tickers in alphabetical order.
func (p *Portfolio) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		tickers := slices.Collect(maps.Keys(p.holdings))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// checkCurrency rejects amounts not denominated in the account currency.
// The empty currency is weak and passes.
func (p *Portfolio) checkCurrency(amount Money) error {
	if c := amount.Currency(); c != "" && c != p.balance.Currency() {
		return fmt.Errorf("amount %s is not in the account currency %s: %w", amount, p.balance.Currency(), ErrInvalidArgument)
	}
	return nil
}

// Deposit adds cash to the balance. The amount must be positive.
func (p *Portfolio) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive, got %s: %w", amount, ErrInvalidArgument)
	}
	if err := p.checkCurrency(amount); err != nil {
		return err
	}
	p.balance = p.balance.Add(amount)
	return nil
}

// Withdraw removes cash from the balance. The amount must be positive and
// cannot exceed the balance.
func (p *Portfolio) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdraw amount must be positive, got %s: %w", amount, ErrInvalidArgument)
	}
	if err := p.checkCurrency(amount); err != nil {
		return err
	}
	if amount.GreaterThan(p.balance) {
		return fmt.Errorf("cannot withdraw %s, cash balance is %s: %w", amount, p.balance, ErrInsufficientFunds)
	}
	p.balance = p.balance.Sub(amount)
	return nil
}

// Buy purchases quantity shares of ticker at the given price per share.
//
// The cost is debited from the balance. A first buy creates the position;
// later buys blend the average cost as the quantity-weighted mean of all buy
// prices currently represented in held shares.
func (p *Portfolio) Buy(ticker string, price Money, quantity Quantity) error {
	t := Ticker(ticker)
	if t == "" {
		return fmt.Errorf("ticker is missing: %w", ErrInvalidArgument)
	}
	if !price.IsPositive() {
		return fmt.Errorf("buy price must be positive, got %s: %w", price, ErrInvalidArgument)
	}
	if err := p.checkCurrency(price); err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("buy quantity must be positive, got %s: %w", quantity, ErrInvalidArgument)
	}
	cost := price.Mul(quantity)
	if cost.GreaterThan(p.balance) {
		return fmt.Errorf("cannot buy %s %s for %s, cash balance is %s: %w", quantity, t, cost, p.balance, ErrInsufficientFunds)
	}

	p.balance = p.balance.Sub(cost)
	pos, ok := p.holdings[t]
	if !ok {
		pos = &Position{Shares: quantity, AverageCost: price, TotalCostBasis: cost}
		p.holdings[t] = pos
	} else {
		shares := pos.Shares.Add(quantity)
		basis := pos.TotalCostBasis.Add(cost)
		pos.Shares = shares
		pos.TotalCostBasis = basis
		pos.AverageCost = basis.Div(shares)
	}
	pos.PurchaseHistory = append(pos.PurchaseHistory, time.Now())
	return nil
}

// Sell disposes of quantity shares of ticker at the given price per share
// and returns the realized gain or loss against the average cost basis.
//
// The proceeds are credited to the balance. A sell never changes the average
// cost; only a buy can. Selling the entire position removes it.
func (p *Portfolio) Sell(ticker string, price Money, quantity Quantity) (realized Money, err error) {
	t := Ticker(ticker)
	if !price.IsPositive() {
		return Money{}, fmt.Errorf("sell price must be positive, got %s: %w", price, ErrInvalidArgument)
	}
	if err := p.checkCurrency(price); err != nil {
		return Money{}, err
	}
	if !quantity.IsPositive() {
		return Money{}, fmt.Errorf("sell quantity must be positive, got %s: %w", quantity, ErrInvalidArgument)
	}
	pos, ok := p.holdings[t]
	if !ok {
		return Money{}, fmt.Errorf("cannot sell %s: %w", t, ErrNoSuchPosition)
	}
	if quantity.GreaterThan(pos.Shares) {
		return Money{}, fmt.Errorf("cannot sell %s %s, holding only %s: %w", quantity, t, pos.Shares, ErrInsufficientShares)
	}

	proceeds := price.Mul(quantity)
	soldBasis := pos.AverageCost.Mul(quantity)
	realized = proceeds.Sub(soldBasis)

	p.balance = p.balance.Add(proceeds)
	pos.Shares = pos.Shares.Sub(quantity)
	if pos.Shares.IsZero() {
		delete(p.holdings, t)
	} else {
		pos.TotalCostBasis = pos.AverageCost.Mul(pos.Shares)
	}
	return realized, nil
}

// SellAll sells the entire position of ticker at the given price per share.
func (p *Portfolio) SellAll(ticker string, price Money) (realized Money, err error) {
	pos, ok := p.holdings[Ticker(ticker)]
	if !ok {
		return Money{}, fmt.Errorf("cannot sell %s: %w", Ticker(ticker), ErrNoSuchPosition)
	}
	return p.Sell(ticker, price, pos.Shares)
}

// Snapshot returns an immutable view of the portfolio for external
// consumption: reporting, advisory, persistence. Mutating the snapshot does
// not affect the portfolio.
func (p *Portfolio) Snapshot() *Snapshot {
	s := &Snapshot{Balance: p.balance}
	for ticker := range p.Tickers() {
		pos := p.holdings[ticker]
		s.Holdings = append(s.Holdings, Holding{
			Ticker:         ticker,
			Shares:         pos.Shares,
			AverageCost:    pos.AverageCost,
			TotalCostBasis: pos.TotalCostBasis,
		})
	}
	return s
}
