package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/renderer"
	"github.com/papertrade/papertrade/yahoo"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "value the portfolio at market prices" }
func (*gainsCmd) Usage() string {
	return `pts gains

  Prices every position at the current market price and reports the
  unrealized gains and the total return.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report := papertrade.NewPerformanceReport(p.Snapshot(), yahoo.NewClient())
	printMarkdown(renderer.Gains(report))
	return subcommands.ExitSuccess
}
