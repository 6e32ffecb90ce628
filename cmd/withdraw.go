package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct{}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "take cash out of the account" }
func (*withdrawCmd) Usage() string {
	return `pts withdraw <amount>

  Takes cash out of the account balance.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "withdraw takes exactly one amount")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.Withdraw(amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error withdrawing: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SavePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Withdrew %s, new balance %s\n", amount, p.Balance())
	return subcommands.ExitSuccess
}
