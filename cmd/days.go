package cmd

import (
	"context"
	"flag"

	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/renderer"
	"github.com/google/subcommands"
)

type daysCmd struct{}

func (*daysCmd) Name() string     { return "days" }
func (*daysCmd) Synopsis() string { return "list the days with recorded sales" }
func (*daysCmd) Usage() string {
	return `vendas days

  Lists every known day, most recent first. Today is always listed.
`
}

func (c *daysCmd) SetFlags(f *flag.FlagSet) {}

func (c *daysCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, true)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	today := app.Ledger.Today()
	if err := app.Ledger.EnsureDay(today); err != nil {
		return fail(app.Err, err)
	}
	count := func(d date.Date) int { return len(app.Ledger.Entries(d)) }
	app.printMarkdown(renderer.DaysMarkdown(app.Ledger.Days(), today, count))
	return subcommands.ExitSuccess
}
