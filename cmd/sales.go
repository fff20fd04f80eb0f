package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/renderer"
	"github.com/google/subcommands"
)

type salesCmd struct {
	day string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales of a day" }
func (*salesCmd) Usage() string {
	return `vendas sales [-d <day>]

  Lists the sales of a day with their line totals.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day to list. Defaults to today.")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, true)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	today := app.Ledger.Today()
	day, err := date.ParseRelative(c.day, today)
	if err != nil {
		fmt.Fprintf(app.Err, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}

	app.printMarkdown(renderer.SalesMarkdown(day, today, app.Ledger.Entries(day), app.Currency))
	return subcommands.ExitSuccess
}
