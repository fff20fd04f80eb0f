package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the list of sales of a day, one row per sale with its
// unit prices and line totals.
func SalesMarkdown(day, today date.Date, sales []vendas.Sale, cur vendas.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vendas de " + dayLabel(day, today))
	if len(sales) == 0 {
		doc.PlainText("Nenhuma venda registrada neste dia")
		return doc.String()
	}

	rows := make([][]string, 0, len(sales))
	for i, s := range sales {
		t := vendas.Totals(s)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cell(s.ProductName),
			strconv.Itoa(s.Quantity),
			cur.Format(s.CostPrice),
			cur.Format(s.SalePrice),
			cur.Format(t.Profit),
			cur.Format(t.Revenue),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Produto", "Qtd", "Compra", "Venda", "Lucro", "Total"},
		Rows:   rows,
		Alignment: []md.TableAlignment{
			md.AlignRight, md.AlignLeft, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
	})
	return doc.String()
}
