package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	day  string
	name string
	cost float64
	sale float64
	qty  float64
	yes  bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a sale" }
func (*addCmd) Usage() string {
	return `vendas add -n <product> -c <cost> -s <price> -q <quantity> [-d <day>] [-y]

  Records a sale on a day (today by default). Prices are per unit.
  Selling below the cost price asks for a confirmation, unless -y is set.

Usage Examples:
$ vendas add -n "Caneta azul" -c 2 -s 3.5 -q 10
$ vendas add -n Caderno -c 12 -s 10 -q 1 -d -1d -y

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day of the sale (DD/MM/YYYY, DD-MM-YYYY or relative like -1d). Defaults to today.")
	f.StringVar(&c.name, "n", "", "Product name.")
	// NaN marks a price that was not given.
	f.Float64Var(&c.cost, "c", math.NaN(), "Unit cost price. Required.")
	f.Float64Var(&c.sale, "s", math.NaN(), "Unit sale price. Required.")
	f.Float64Var(&c.qty, "q", 1, "Quantity sold (whole number).")
	f.BoolVar(&c.yes, "y", false, "Do not ask for a confirmation when selling below cost.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	in := vendas.SaleInput{ProductName: c.name, CostPrice: c.cost, SalePrice: c.sale, Quantity: c.qty}
	if err := in.Validate(); err != nil {
		return fail(app.Err, err)
	}
	if in.BelowCost() {
		ok, err := app.confirmer(c.yes).Confirm(fmt.Sprintf(
			"O preço de venda (%s) é menor que o preço de compra (%s). Deseja continuar?",
			app.Currency.Format(in.SalePrice), app.Currency.Format(in.CostPrice)))
		if err != nil {
			return fail(app.Err, err)
		}
		if !ok {
			fmt.Fprintln(app.Err, "Venda cancelada.")
			return subcommands.ExitFailure
		}
	}

	sale, err := app.Ledger.Append(day, in)
	if err != nil {
		return fail(app.Err, err)
	}
	t := vendas.Totals(sale)
	fmt.Fprintf(app.Out, "✅ %d x %s em %s: total %s, lucro %s\n",
		sale.Quantity, sale.ProductName, day, app.Currency.Format(t.Revenue), app.Currency.Format(t.Profit))
	return subcommands.ExitSuccess
}
