// Package cmd implements the CLI application to manage a paper-trading account.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/papertrade/papertrade"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&depositCmd{}, "account")
	c.Register(&withdrawCmd{}, "account")
	c.Register(&holdingCmd{}, "account")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")

	c.Register(&gainsCmd{}, "market")
	c.Register(&gainersCmd{}, "market")

	c.Register(&suggestCmd{}, "advisor")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.json", "Path to the portfolio file (JSON format)")

func portfolioStore() *papertrade.FileStore {
	return papertrade.NewFileStore(*portfolioFile, papertrade.DefaultStartingBalance)
}

// LoadPortfolio loads the portfolio from the app default portfolio file,
// starting a fresh one when the file does not exist yet.
func LoadPortfolio() (*papertrade.Portfolio, error) {
	return portfolioStore().Load()
}

// SavePortfolio writes the portfolio back to the app default portfolio file.
func SavePortfolio(p *papertrade.Portfolio) subcommands.ExitStatus {
	if err := portfolioStore().Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio to %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseAmount parses a positional cash amount in the portfolio currency.
func parseAmount(s string) (papertrade.Money, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return papertrade.Money{}, fmt.Errorf("invalid amount %q", s)
	}
	return papertrade.M(v, papertrade.DefaultCurrency), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
