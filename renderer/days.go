package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/vendas/date"
	md "github.com/nao1215/markdown"
)

// dayLabel names a day, marking the current one.
func dayLabel(day, today date.Date) string {
	if day == today {
		return day.String() + " (Hoje)"
	}
	return day.String()
}

// DaysMarkdown renders the day selector: every known day, in the given order,
// with the number of sales recorded on it.
func DaysMarkdown(days []date.Date, today date.Date, count func(date.Date) int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dias")
	if len(days) == 0 {
		doc.PlainText("Nenhum dia registrado")
		return doc.String()
	}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{dayLabel(d, today), itoa(count(d))})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Dia", "Vendas"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})
	return doc.String()
}

func itoa(i int) string { return strconv.Itoa(i) }
