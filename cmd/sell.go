package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	quantity float64
	price    float64
	all      bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares of a security" }
func (*sellCmd) Usage() string {
	return `pts sell <ticker> -q <quantity> [-p <price>]
pts sell <ticker> -all [-p <price>]

  Sells shares of a security. Without -p the current market price is used.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.quantity, "q", 0, "Number of shares to sell")
	f.Float64Var(&c.price, "p", 0, "Price per share. Defaults to the current market price.")
	f.BoolVar(&c.all, "all", false, "Sell the whole position")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "sell takes exactly one ticker")
		return subcommands.ExitUsageError
	}
	if c.all && c.quantity != 0 {
		fmt.Fprintln(os.Stderr, "-q and -all flags cannot be used together")
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

	var realized papertrade.Money
	if c.all {
		realized, err = p.SellAll(ticker, price)
	} else {
		realized, err = p.Sell(ticker, price, papertrade.Q(c.quantity))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selling %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}
	if status := SavePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Sold %s at %s, realized gain %s, balance %s\n",
		ticker, price, realized.SignedString(), p.Balance())
	return subcommands.ExitSuccess
}
