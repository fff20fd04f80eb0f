// Package export builds the downloadable report of a day.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
)

// Format is a report file format.
type Format string

const (
	TXT  Format = "txt"
	XLSX Format = "xlsx"
	PDF  Format = "pdf"
)

// ParseFormat parses a format name, case insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case TXT, XLSX, PDF:
		return f, nil
	case "":
		return TXT, nil
	default:
		return "", fmt.Errorf("unknown export format %q want %q, %q or %q", s, TXT, XLSX, PDF)
	}
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case PDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName is the report file name of day, e.g. relatorio_vendas_16-10-2026.xlsx.
func FileName(day date.Date, f Format) string {
	return vendas.ReportBaseName(day) + "." + string(f)
}

// Build returns the report of day in format f.
func Build(f Format, day date.Date, sales []vendas.Sale, cur vendas.Currency) ([]byte, error) {
	switch f {
	case TXT:
		return []byte(vendas.FormatReport(day, sales, cur)), nil
	case XLSX:
		return buildXLSX(day, sales, cur)
	case PDF:
		return buildPDF(day, sales, cur)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// Write writes the report of day to w.
func Write(w io.Writer, f Format, day date.Date, sales []vendas.Sale, cur vendas.Currency) error {
	data, err := Build(f, day, sales, cur)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// WriteFile writes the report of day into dir and returns the file path.
func WriteFile(dir string, f Format, day date.Date, sales []vendas.Sale, cur vendas.Currency) (string, error) {
	data, err := Build(f, day, sales, cur)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create export directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(day, f))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("could not write report %q: %w", path, err)
	}
	return path, nil
}
