package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct{}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add cash to the account" }
func (*depositCmd) Usage() string {
	return `pts deposit <amount>

  Adds cash to the account balance.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "deposit takes exactly one amount")
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

	if err := p.Deposit(amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error depositing: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SavePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Deposited %s, new balance %s\n", amount, p.Balance())
	return subcommands.ExitSuccess
}
