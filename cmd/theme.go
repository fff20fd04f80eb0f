package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/vendas"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or change the color theme" }
func (*themeCmd) Usage() string {
	return `vendas theme [toggle|light|dark]

  Without argument, prints the current theme. The theme selects the style
  used to render reports in the terminal.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, false)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	switch f.NArg() {
	case 0:
	case 1:
		if f.Arg(0) == "toggle" {
			if _, err := app.Prefs.ToggleTheme(); err != nil {
				return fail(app.Err, err)
			}
			break
		}
		theme, err := vendas.ParseTheme(f.Arg(0))
		if err != nil {
			fmt.Fprintln(app.Err, err)
			return subcommands.ExitUsageError
		}
		if err := app.Prefs.SetTheme(theme); err != nil {
			return fail(app.Err, err)
		}
	default:
		fmt.Fprintln(app.Err, "Error: theme takes at most one argument.")
		return subcommands.ExitUsageError
	}
	fmt.Fprintln(app.Out, app.Prefs.Theme())
	return subcommands.ExitSuccess
}
