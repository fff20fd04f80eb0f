package export

import (
	"bytes"
	"fmt"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "resumo"
	salesSheet   = "vendas"
)

// buildXLSX renders the report as a workbook with a summary sheet and a sales sheet.
// Amounts are stored rounded the same way the other views display them.
func buildXLSX(day date.Date, sales []vendas.Sale, cur vendas.Currency) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(salesSheet); err != nil {
		return nil, err
	}
	numFmt := "0.00"
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, err
	}

	agg := vendas.Rollup(sales)
	_ = f.SetCellValue(summarySheet, "A1", "RELATÓRIO DE VENDAS - "+day.String())
	_ = f.SetCellValue(summarySheet, "A3", "Moeda")
	_ = f.SetCellValue(summarySheet, "B3", cur.Code())
	_ = f.SetCellValue(summarySheet, "A4", "Total Vendido")
	_ = f.SetCellValue(summarySheet, "B4", cur.Round(agg.TotalRevenue))
	_ = f.SetCellValue(summarySheet, "A5", "Total Investido")
	_ = f.SetCellValue(summarySheet, "B5", cur.Round(agg.TotalCost))
	_ = f.SetCellValue(summarySheet, "A6", "Lucro Total")
	_ = f.SetCellValue(summarySheet, "B6", cur.Round(agg.TotalProfit))
	_ = f.SetCellValue(summarySheet, "A7", "Margem de Lucro")
	_ = f.SetCellValue(summarySheet, "B7", vendas.FormatPercent(agg.MarginPercent))
	_ = f.SetCellStyle(summarySheet, "B4", "B6", money)

	header := []string{"Produto", "Quantidade", "Preço de Compra", "Preço de Venda", "Total Vendido", "Lucro", "Horário"}
	for i, h := range header {
		c, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(salesSheet, c, h)
	}
	for i, s := range sales {
		row := i + 2
		t := vendas.Totals(s)
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("A%d", row), s.ProductName)
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("B%d", row), s.Quantity)
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("C%d", row), cur.Round(s.CostPrice))
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("D%d", row), cur.Round(s.SalePrice))
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("E%d", row), cur.Round(t.Revenue))
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("F%d", row), cur.Round(t.Profit))
		_ = f.SetCellValue(salesSheet, fmt.Sprintf("G%d", row), s.Timestamp.Format(vendas.TimestampFormat))
	}
	if len(sales) > 0 {
		_ = f.SetCellStyle(salesSheet, "C2", fmt.Sprintf("F%d", len(sales)+1), money)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
