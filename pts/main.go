package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/papertrade/papertrade/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately when
// none is in progress. Install with: complete -C pts pts
func completion() {
	priceFlags := map[string]complete.Predictor{
		"q": predict.Something,
		"p": predict.Something,
	}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"deposit":  {Args: predict.Something},
			"withdraw": {Args: predict.Something},
			"buy":      {Args: predict.Something, Flags: priceFlags},
			"sell": {Args: predict.Something, Flags: map[string]complete.Predictor{
				"q":   predict.Something,
				"p":   predict.Something,
				"all": predict.Nothing,
			}},
			"holding": {},
			"gains":   {},
			"gainers": {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"suggest": {Flags: map[string]complete.Predictor{"model": predict.Something}},
			"topic": {Args: predict.Set{
				"readme", "accounting", "quotes", "advisor", "*",
			}},
		},
	}
	c.Complete("pts")
}
