package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	day    string
	format string
	dir    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the report of a day to a file" }
func (*exportCmd) Usage() string {
	return `vendas export [-d <day>] [-f txt|xlsx|pdf] [-o <dir>]

  Writes the report of a day to relatorio_vendas_<DD-MM-YYYY>.<format> in the
  output directory. Use -o - to print the text report instead.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day to export. Defaults to today.")
	f.StringVar(&c.format, "f", "txt", "Report format (txt, xlsx, pdf).")
	f.StringVar(&c.dir, "o", ".", "Output directory, or - for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
	format, err := export.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintln(app.Err, err)
		return subcommands.ExitUsageError
	}

	sales := app.Ledger.Entries(day)
	if c.dir == "-" {
		if err := export.Write(app.Out, format, day, sales, app.Currency); err != nil {
			return fail(app.Err, err)
		}
		return subcommands.ExitSuccess
	}
	path, err := export.WriteFile(c.dir, format, day, sales, app.Currency)
	if err != nil {
		return fail(app.Err, err)
	}
	fmt.Fprintf(app.Out, "✅ Relatório salvo em %s\n", path)
	return subcommands.ExitSuccess
}
