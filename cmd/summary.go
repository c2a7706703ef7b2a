package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spend"
	"github.com/etnz/spend/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filterFlags
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals and top categories" }
func (*summaryCmd) Usage() string {
	return `xps summary [-d <date>] [-q <text>] [-c <category>] [-s <date>] [-e <date>]

  Displays the total, the current-month total and the top spending
  categories of the records matching the filters.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.date, "d", spend.Today().String(), "Reference date for the month total.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := spend.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	filter, err := c.Filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	records := spend.Apply(store.Ledger(), filter)
	summary := spend.NewSummary(records, on)
	printMarkdown(renderer.Summary(summary, Currency()))
	return subcommands.ExitSuccess
}
