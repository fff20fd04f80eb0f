package export

import (
	"bytes"
	"fmt"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
	"github.com/jung-kurt/gofpdf"
)

// buildPDF renders the report as a one page A4 document.
func buildPDF(day date.Date, sales []vendas.Sale, cur vendas.Currency) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252, translate the accented labels
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, tr("RELATÓRIO DE VENDAS - "+day.String()))
	pdf.Ln(12)

	if len(sales) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, tr("Nenhuma venda registrada neste dia."))
		return output(pdf)
	}

	widths := []float64{60, 20, 27, 27, 28, 28}
	header := []string{"Produto", "Qtd", "Compra", "Venda", "Total", "Lucro"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, s := range sales {
		t := vendas.Totals(s)
		pdf.CellFormat(widths[0], 6, tr(s.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprint(s.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(cur.Format(s.CostPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(cur.Format(s.SalePrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, tr(cur.Format(t.Revenue)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, tr(cur.Format(t.Profit)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	agg := vendas.Rollup(sales)
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "RESUMO FINANCEIRO")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, line := range [][2]string{
		{"Total Vendido", cur.Format(agg.TotalRevenue)},
		{"Total Investido", cur.Format(agg.TotalCost)},
		{"Lucro Total", cur.Format(agg.TotalProfit)},
		{"Margem de Lucro", vendas.FormatPercent(agg.MarginPercent)},
	} {
		pdf.CellFormat(50, 6, tr(line[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(line[1]), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
