package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/yahoo"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	quantity float64
	price    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a security" }
func (*buyCmd) Usage() string {
	return `pts buy <ticker> -q <quantity> [-p <price>]

  Buys shares of a security. Without -p the current market price is used.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.quantity, "q", 0, "Number of shares to buy")
	f.Float64Var(&c.price, "p", 0, "Price per share. Defaults to the current market price.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "buy takes exactly one ticker")
		return subcommands.ExitUsageError
	}
	ticker := papertrade.Ticker(f.Arg(0))

	price, status := resolvePrice(ticker, c.price)
	if status != subcommands.ExitSuccess {
		return status
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.Buy(ticker, price, papertrade.Q(c.quantity)); err != nil {
		fmt.Fprintf(os.Stderr, "Error buying %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}
	if status := SavePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}

	pos, _ := p.Position(ticker)
	fmt.Printf("Bought %s %s at %s, now holding %s shares, balance %s\n",
		papertrade.Q(c.quantity), ticker, price, pos.Shares, p.Balance())
	return subcommands.ExitSuccess
}

// resolvePrice returns the explicit price when given, and the current market
// price otherwise.
func resolvePrice(ticker string, explicit float64) (papertrade.Money, subcommands.ExitStatus) {
	if explicit != 0 {
		return papertrade.M(explicit, papertrade.DefaultCurrency), subcommands.ExitSuccess
	}
	price, err := yahoo.NewClient().Price(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching price for %s: %v\n", ticker, err)
		return papertrade.Money{}, subcommands.ExitFailure
	}
	fmt.Printf("Using current market price %s for %s\n", price, ticker)
	return price, subcommands.ExitSuccess
}
