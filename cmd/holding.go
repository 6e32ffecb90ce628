package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show cash balance and positions" }
func (*holdingCmd) Usage() string {
	return `pts holding

  Shows the cash balance and every position with its average cost.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holding(p.Snapshot()))
	return subcommands.ExitSuccess
}
