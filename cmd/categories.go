package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the known categories" }
func (*categoriesCmd) Usage() string {
	return `xps categories

  Lists the default categories plus every category observed in the ledger,
  sorted alphabetically.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	printMarkdown(renderer.Categories(store.Ledger().Categories()))
	return subcommands.ExitSuccess
}
