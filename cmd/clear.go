package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every expense in the ledger" }
func (*clearCmd) Usage() string {
	return `xps clear -f

  Empties the whole ledger. There is no undo, so the -f flag is required
  to confirm.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm deleting every record.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Refusing to clear the ledger without -f.")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	n := store.Ledger().Len()
	store.Clear()
	fmt.Printf("Deleted %d record(s).\n", n)
	return subcommands.ExitSuccess
}
