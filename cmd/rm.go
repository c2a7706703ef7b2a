package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an expense by id" }
func (*rmCmd) Usage() string {
	return `xps rm <id>...

  Deletes the expenses with the given ids. Unknown ids are ignored, so the
  command is safe to repeat.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing expense id")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	for _, id := range f.Args() {
		store.Delete(id)
	}
	fmt.Printf("Ledger now holds %d record(s).\n", store.Ledger().Len())
	return subcommands.ExitSuccess
}
