package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/vendas/date"
	"github.com/google/subcommands"
)

type resetCmd struct {
	day string
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every sale of a day" }
func (*resetCmd) Usage() string {
	return `vendas reset [-d <day>] [-y]

  Deletes every sale of a day. The day itself stays listed.
  Asks for a confirmation unless -y is set.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day to reset. Defaults to today.")
	f.BoolVar(&c.yes, "y", false, "Do not ask for a confirmation.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	ok, err := app.confirmer(c.yes).Confirm(fmt.Sprintf("Tem certeza que deseja limpar todas as vendas de %s?", day))
	if err != nil {
		return fail(app.Err, err)
	}
	if !ok {
		fmt.Fprintln(app.Err, "Nada foi apagado.")
		return subcommands.ExitFailure
	}
	if err := app.Ledger.ResetDay(day); err != nil {
		return fail(app.Err, err)
	}
	fmt.Fprintf(app.Out, "✅ Vendas de %s apagadas.\n", day)
	return subcommands.ExitSuccess
}
