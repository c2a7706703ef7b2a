// Package cmd implements the CLI application to manage the expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/spend"
	"github.com/etnz/spend/kv"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&rmCmd{}, "ledger")
	c.Register(&clearCmd{}, "ledger")

	c.Register(&listCmd{}, "views")
	c.Register(&summaryCmd{}, "views")
	c.Register(&categoriesCmd{}, "views")
	c.Register(&queryCmd{}, "views")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&importCmd{}, "interchange")

	c.Register(&suggestCmd{}, "assist")
	c.Register(&topicCmd{}, "assist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "", "Path to the expense database file (defaults to $XPS_DB or expenses.db)")
var currency = flag.String("currency", "", "Display currency for amounts (defaults to $XPS_CURRENCY or EUR)")

// DBFile resolves the database path from the flag, the environment, or the default.
func DBFile() string {
	if *dbFile != "" {
		return *dbFile
	}
	if env := os.Getenv("XPS_DB"); env != "" {
		return env
	}
	return "expenses.db"
}

// Currency resolves the display currency from the flag, the environment, or the default.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	if env := os.Getenv("XPS_CURRENCY"); env != "" {
		return env
	}
	return spend.DefaultCurrency
}

// OpenStore opens the persistent ledger store. The returned closer releases
// the underlying database and must be called before exiting.
func OpenStore() (*spend.Store, io.Closer, error) {
	db, err := kv.OpenSQLite(DBFile())
	if err != nil {
		return nil, nil, fmt.Errorf("could not open database %q: %w", DBFile(), err)
	}
	return spend.Open(db, spend.DefaultKey), db, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. when stdout is not a terminal).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
