package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spend"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full ledger to a portable JSON file" }
func (*exportCmd) Usage() string {
	return `xps export [-o <file>]

  Writes the whole ledger (ignoring any filters) to a portable JSON file.
  The default file name is expenses-<today>.json. Use "-o -" to write to
  stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", spend.ExportFilename(spend.Today()), "Output file, or - for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	if c.output == "-" {
		if err := store.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := store.Export(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d record(s) to %s\n", store.Ledger().Len(), c.output)
	return subcommands.ExitSuccess
}
