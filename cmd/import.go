package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with the content of a JSON file" }
func (*importCmd) Usage() string {
	return `xps import <file>

  Replaces the entire ledger with the records found in the file. This is a
  destructive overwrite, not a merge. The file must contain a JSON array
  of records; anything else is rejected and the ledger is left untouched.
  Records with a missing, zero or negative amount are dropped individually.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	kept, dropped, err := store.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d record(s), dropped %d invalid one(s).\n", kept, dropped)
	return subcommands.ExitSuccess
}
