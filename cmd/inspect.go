package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type inspectCmd struct {
	query string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "print the stored sales data" }
func (*inspectCmd) Usage() string {
	return `vendas inspect [-q <jsonpath>]

  Prints the sales data exactly as it is persisted, or the result of a
  JSONPath query on it.

Usage Examples:
# Product names sold on a day.
$ vendas inspect -q '$["16/10/2026"][*].productName'

`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to evaluate on the sales data.")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, true)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	blob, err := app.Ledger.Blob()
	if err != nil {
		return fail(app.Err, err)
	}
	if c.query == "" {
		fmt.Fprintln(app.Out, blob)
		return subcommands.ExitSuccess
	}

	var v interface{}
	if err := json.Unmarshal([]byte(blob), &v); err != nil {
		return fail(app.Err, err)
	}
	result, err := jsonpath.Get(c.query, v)
	if err != nil {
		fmt.Fprintf(app.Err, "Error evaluating %q: %v\n", c.query, err)
		return subcommands.ExitUsageError
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail(app.Err, err)
	}
	fmt.Fprintln(app.Out, string(out))
	return subcommands.ExitSuccess
}
