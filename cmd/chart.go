package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	day string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the charts of a day" }
func (*chartCmd) Usage() string {
	return `vendas chart [-d <day>]

  Draws the investment vs profit distribution and the financial overview of a day.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day to chart. Defaults to today.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, true)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	day, err := date.ParseRelative(c.day, app.Ledger.Today())
	if err != nil {
		fmt.Fprintf(app.Err, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}

	data := vendas.Charts(vendas.Rollup(app.Ledger.Entries(day)))
	app.printMarkdown(renderer.ChartsMarkdown(data, app.Currency))
	return subcommands.ExitSuccess
}
