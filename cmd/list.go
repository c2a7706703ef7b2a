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

// filterFlags holds the filtering flags shared by the view commands.
type filterFlags struct {
	query    string
	category string
	start    string
	end      string
}

func (p *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Show only records whose note or category contains this text.")
	f.StringVar(&p.category, "c", "", "Show only records with exactly this category.")
	f.StringVar(&p.start, "s", "", "Inclusive start date.")
	f.StringVar(&p.end, "e", "", "Inclusive end date.")
}

// Filter builds the spend.Filter from the flags.
func (p *filterFlags) Filter() (spend.Filter, error) {
	filter := spend.Filter{Query: p.query, Category: p.category}
	if p.start != "" {
		from, err := spend.ParseDate(p.start)
		if err != nil {
			return spend.Filter{}, fmt.Errorf("invalid start date: %w", err)
		}
		filter.From = from
	}
	if p.end != "" {
		to, err := spend.ParseDate(p.end)
		if err != nil {
			return spend.Filter{}, fmt.Errorf("invalid end date: %w", err)
		}
		filter.To = to
	}
	return filter, nil
}

type listCmd struct {
	filterFlags
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list expenses, newest first" }
func (*listCmd) Usage() string {
	return `xps list [-q <text>] [-c <category>] [-s <date>] [-e <date>]

  Lists the expenses matching every given filter, preserving ledger order
  (newest first). With no flags, lists the whole ledger.
`
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Records(records, Currency()))
	return subcommands.ExitSuccess
}
