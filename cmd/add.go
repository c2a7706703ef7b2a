package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	amount   string
	category string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense in the ledger" }
func (*addCmd) Usage() string {
	return `xps add -a <amount> [-d <date>] [-c <category>] [-n <note>]

  Records a single expense. The amount must be a positive number and is
  rounded to the cent. The date defaults to today, the category to "Other".

Usage Examples:
$ xps add -a 12.50 -c Food -n "lunch"
$ xps add -a 40 -d 2024-02-01 -c Transport -n "fuel"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount spent (required, positive).")
	f.StringVar(&c.date, "d", spend.Today().String(), "Date of the expense.")
	f.StringVar(&c.category, "c", "", "Category of the expense.")
	f.StringVar(&c.note, "n", "", "Free-text note.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	record, err := store.Add(spend.Draft{
		Date:     c.date,
		Amount:   c.amount,
		Category: c.category,
		Note:     c.note,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding expense: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Added %s %s (%s) as %s\n", record.Date, spend.FormatAmount(record.Amount, Currency()), record.Category, record.ID)
	return subcommands.ExitSuccess
}
