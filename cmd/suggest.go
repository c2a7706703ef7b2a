package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/spend/assist"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest a category for an expense note" }
func (*suggestCmd) Usage() string {
	return `xps suggest <note>...

  Asks Gemini to pick a category for the note among the categories known
  to the ledger. Requires GEMINI_API_KEY (a .env file is honored).

Usage Examples:
$ xps suggest train ticket to the airport
`
}

func (*suggestCmd) SetFlags(f *flag.FlagSet) {}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing note to categorize")
		return subcommands.ExitUsageError
	}
	note := strings.Join(f.Args(), " ")

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	categorizer, err := assist.NewCategorizer(ctx, client, store.Ledger().Categories())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	category, err := categorizer.Suggest(ctx, note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error suggesting a category: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(category)
	return subcommands.ExitSuccess
}
