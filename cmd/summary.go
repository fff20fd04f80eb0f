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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	day    string
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial summary of a day or period" }
func (*summaryCmd) Usage() string {
	return `vendas summary [-d <day>] [-p <period>]

  Displays the total sold, total invested, total profit and margin of a day.
  With -p, rolls up every day of the period (day, week, month, quarter, year)
  containing the day.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day for the summary. Defaults to today.")
	f.StringVar(&c.period, "p", "day", "Period to roll up (day, week, month, quarter, year).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(app.Err, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	r := date.NewRange(day, period)
	agg := vendas.Rollup(app.Ledger.SalesIn(r))
	app.printMarkdown(renderer.SummaryMarkdown("Resumo "+r.Identifier(), agg, app.Currency))
	return subcommands.ExitSuccess
}
