package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade/renderer"
	"github.com/papertrade/papertrade/yahoo"
)

// gainersCmd holds the flags for the 'gainers' subcommand.
type gainersCmd struct {
	count int
}

func (*gainersCmd) Name() string     { return "gainers" }
func (*gainersCmd) Synopsis() string { return "show the day's top gaining stocks" }
func (*gainersCmd) Usage() string {
	return `pts gainers [-n <count>]

  Shows the day's top gaining stocks.
`
}

func (c *gainersCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 5, "Number of gainers to show")
}

func (c *gainersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gainers, err := yahoo.NewClient().TopGainers(c.count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching top gainers: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Gainers(gainers))
	return subcommands.ExitSuccess
}
