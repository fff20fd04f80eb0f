package renderer

import (
	"bytes"
	"math"

	"github.com/etnz/vendas"
	md "github.com/nao1215/markdown"
)

// ChartsMarkdown renders the two charts of a day as tables of text bars.
func ChartsMarkdown(data vendas.ChartData, cur vendas.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Gráficos")
	if empty(data.Overview) {
		doc.PlainText("Adicione vendas para visualizar gráficos")
		return doc.String()
	}

	doc.H2("Distribuição: Investimento vs Lucro")
	chart(doc, data.Distribution, cur)
	doc.H2("Visão Geral Financeira")
	chart(doc, data.Overview, cur)
	return doc.String()
}

func chart(doc *md.Markdown, points []vendas.ChartPoint, cur vendas.Currency) {
	var top float64
	for _, p := range points {
		top = math.Max(top, math.Abs(p.Value))
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Label, cur.Format(p.Value), bar(p.Value, top)})
	}
	doc.Table(md.TableSet{
		Header:    []string{"", "Valor", ""},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
	})
}

func empty(points []vendas.ChartPoint) bool {
	for _, p := range points {
		if p.Value != 0 {
			return false
		}
	}
	return true
}
