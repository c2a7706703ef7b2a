package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/spend/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook this call prints candidates and exits.
	completion().Complete("xps")

	// A .env file may carry GEMINI_API_KEY, XPS_DB or XPS_CURRENCY.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	filters := map[string]complete.Predictor{
		"q": predict.Nothing,
		"c": predict.Nothing,
		"s": predict.Nothing,
		"e": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"db":       predict.Files("*.db"),
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF"},
		},
		Sub: map[string]*complete.Command{
			"add":        {Flags: map[string]complete.Predictor{"a": predict.Nothing, "d": predict.Nothing, "c": predict.Nothing, "n": predict.Nothing}},
			"rm":         {},
			"clear":      {Flags: map[string]complete.Predictor{"f": predict.Nothing}},
			"list":       {Flags: filters},
			"summary":    {Flags: filters},
			"categories": {},
			"query":      {},
			"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":     {Args: predict.Files("*.json")},
			"suggest":    {},
			"topic":      {Args: predict.Set{"readme", "ledger", "filtering", "import-export"}},
		},
	}
}
