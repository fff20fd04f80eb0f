package renderer

import (
	"bytes"

	"github.com/etnz/vendas"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the financial summary of an aggregate under title.
func SummaryMarkdown(title string, agg vendas.DayAggregate, cur vendas.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Resumo", md.Bold(cur.Code())},
		Rows: [][]string{
			{"Total Vendido", cur.Format(agg.TotalRevenue)},
			{"Total Investido", cur.Format(agg.TotalCost)},
			{"Lucro Total", cur.Format(agg.TotalProfit)},
			{"Margem", vendas.FormatPercent(agg.MarginPercent)},
			{"Vendas", itoa(agg.Count)},
		},
	})
	return doc.String()
}
