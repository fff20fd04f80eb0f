package vendas

import (
	"fmt"
	"strings"

	"github.com/etnz/vendas/date"
)

var reportRule = strings.Repeat("=", 60)

// FormatReport renders the plain-text sales report of a day.
//
// The layout is a title line, the detailed list of sales, then the financial
// summary. A day without sales only states that nothing was recorded.
func FormatReport(day date.Date, sales []Sale, cur Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RELATÓRIO DE VENDAS - %s\n", day)
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	if len(sales) == 0 {
		b.WriteString("Nenhuma venda registrada neste dia.\n")
		return b.String()
	}

	b.WriteString("VENDAS DETALHADAS:\n\n")
	for i, s := range sales {
		t := Totals(s)
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.ProductName)
		fmt.Fprintf(&b, "   Quantidade: %d\n", s.Quantity)
		fmt.Fprintf(&b, "   Preço de Compra: %s\n", cur.Format(s.CostPrice))
		fmt.Fprintf(&b, "   Preço de Venda: %s\n", cur.Format(s.SalePrice))
		fmt.Fprintf(&b, "   Total Vendido: %s\n", cur.Format(t.Revenue))
		fmt.Fprintf(&b, "   Lucro: %s\n\n", cur.Format(t.Profit))
	}

	agg := Rollup(sales)
	fmt.Fprintf(&b, "%s\n\n", reportRule)
	b.WriteString("RESUMO FINANCEIRO:\n\n")
	fmt.Fprintf(&b, "Total Vendido: %s\n", cur.Format(agg.TotalRevenue))
	fmt.Fprintf(&b, "Total Investido: %s\n", cur.Format(agg.TotalCost))
	fmt.Fprintf(&b, "Lucro Total: %s\n", cur.Format(agg.TotalProfit))
	fmt.Fprintf(&b, "Margem de Lucro: %s\n", FormatPercent(agg.MarginPercent))
	return b.String()
}

// ReportFileName is the name of the exported report of a day,
// e.g. "relatorio_vendas_16-10-2026.txt".
func ReportFileName(day date.Date) string {
	return ReportBaseName(day) + ".txt"
}

// ReportBaseName is ReportFileName without extension.
func ReportBaseName(day date.Date) string {
	return "relatorio_vendas_" + day.FileName()
}
