package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/agent"
	"github.com/papertrade/papertrade/yahoo"
	"google.golang.org/genai"
)

// suggestCmd holds the flags for the 'suggest' subcommand.
type suggestCmd struct {
	model string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "ask the AI advisor for trading ideas" }
func (*suggestCmd) Usage() string {
	return `pts suggest [-model <model>]

  Sends the portfolio, its performance, and a market summary to a Gemini
  model and prints its trading suggestions. Requires GEMINI_API_KEY.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", agent.DefaultModel, "Gemini model to use")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	yc := yahoo.NewClient()
	snap := p.Snapshot()
	report := papertrade.NewPerformanceReport(snap, yc)
	market, err := yc.MarketSummary(5)
	if err != nil {
		// The advisor can still work from the portfolio alone.
		fmt.Fprintf(os.Stderr, "Warning: no market summary: %v\n", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(client)
	advisor.ModelName = c.model
	answer, err := advisor.Suggest(ctx, snap, report, market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting suggestions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(answer)
	return subcommands.ExitSuccess
}
