package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/export"
	"github.com/go-chi/chi/v5"
)

type saleView struct {
	ProductName string            `json:"productName"`
	CostPrice   float64           `json:"costPrice"`
	SalePrice   float64           `json:"salePrice"`
	Quantity    int               `json:"quantity"`
	Timestamp   string            `json:"timestamp"`
	Totals      vendas.LineTotals `json:"totals"`
	Formatted   map[string]string `json:"formatted"`
}

func (s *Server) viewOf(sale vendas.Sale) saleView {
	t := vendas.Totals(sale)
	return saleView{
		ProductName: sale.ProductName,
		CostPrice:   sale.CostPrice,
		SalePrice:   sale.SalePrice,
		Quantity:    sale.Quantity,
		Timestamp:   sale.Timestamp.UTC().Format(vendas.TimestampFormat),
		Totals:      t,
		Formatted: map[string]string{
			"costPrice": s.cur.Format(sale.CostPrice),
			"salePrice": s.cur.Format(sale.SalePrice),
			"revenue":   s.cur.Format(t.Revenue),
			"profit":    s.cur.Format(t.Profit),
		},
	}
}

// appendRequest is the body of a new sale. Numbers are pointers so that a
// missing field is told apart from zero.
type appendRequest struct {
	ProductName      string   `json:"productName"`
	CostPrice        *float64 `json:"costPrice"`
	SalePrice        *float64 `json:"salePrice"`
	Quantity         *float64 `json:"quantity"`
	ConfirmBelowCost bool     `json:"confirmBelowCost"`
}

// input converts the request, missing numbers becoming NaN.
func (req appendRequest) input() vendas.SaleInput {
	orNaN := func(v *float64) float64 {
		if v == nil {
			return math.NaN()
		}
		return *v
	}
	return vendas.SaleInput{
		ProductName: req.ProductName,
		CostPrice:   orNaN(req.CostPrice),
		SalePrice:   orNaN(req.SalePrice),
		Quantity:    orNaN(req.Quantity),
	}
}

// day parses the {day} path parameter, DD-MM-YYYY or a relative form like "today".
func (s *Server) day(w http.ResponseWriter, r *http.Request) (date.Date, bool) {
	day, err := date.ParseRelative(chi.URLParam(r, "day"), s.ledger.Today())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return date.Date{}, false
	}
	return day, true
}

// fail maps ledger errors to a response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *vendas.ValidationError
	switch {
	case errors.As(err, &verr):
		if s.metrics != nil {
			s.metrics.ValidationFailures.Inc()
		}
		writeError(w, http.StatusBadRequest, vendas.ErrValidation.Error(), verr.Problems...)
	case errors.Is(err, vendas.ErrStorage):
		if s.metrics != nil {
			s.metrics.StorageFailures.Inc()
		}
		s.log.WithContext(r.Context()).WithError(err).Error("ledger not persisted")
		writeError(w, http.StatusInternalServerError, "could not save the sales data")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	today := s.ledger.Today()
	if err := s.ledger.EnsureDay(today); err != nil {
		s.fail(w, r, err)
		return
	}
	type dayView struct {
		Day   date.Date `json:"day"`
		Count int       `json:"count"`
		Today bool      `json:"today"`
	}
	days := []dayView{}
	for _, d := range s.ledger.Days() {
		days = append(days, dayView{Day: d, Count: len(s.ledger.Entries(d)), Today: d == today})
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "days": days})
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	day, ok := s.day(w, r)
	if !ok {
		return
	}
	sales := []saleView{}
	for _, sale := range s.ledger.Entries(day) {
		sales = append(sales, s.viewOf(sale))
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "sales": sales})
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	day, ok := s.day(w, r)
	if !ok {
		return
	}
	var req appendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	in := req.input()
	if err := in.Validate(); err != nil {
		s.fail(w, r, err)
		return
	}
	if in.BelowCost() && !req.ConfirmBelowCost {
		writeError(w, http.StatusConflict, "sale price is lower than cost price",
			"resend with confirmBelowCost set to true to record it anyway")
		return
	}

	sale, err := s.ledger.Append(day, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.SalesAppended.Inc()
	}
	writeJSON(w, http.StatusCreated, s.viewOf(sale))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	day, ok := s.day(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusPreconditionRequired, "resetting a day deletes all its sales",
			"resend with ?confirm=true")
		return
	}
	if err := s.ledger.ResetDay(day); err != nil {
		s.fail(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.DayResets.Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	day, ok := s.day(w, r)
	if !ok {
		return
	}
	agg := vendas.Rollup(s.ledger.Entries(day))
	writeJSON(w, http.StatusOK, map[string]any{
		"day":       day,
		"summary":   agg,
		"formatted": map[string]string{
			"totalRevenue":  s.cur.Format(agg.TotalRevenue),
			"totalCost":     s.cur.Format(agg.TotalCost),
			"totalProfit":   s.cur.Format(agg.TotalProfit),
			"marginPercent": vendas.FormatPercent(agg.MarginPercent),
		},
	})
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	day, ok := s.day(w, r)
	if !ok {
		return
	}
	sales := s.ledger.Entries(day)
	writeJSON(w, http.StatusOK, map[string]any{
		"day":    day,
		"empty":  len(sales) == 0,
		"charts": vendas.Charts(vendas.Rollup(sales)),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	day, ok := s.day(w, r)
	if !ok {
		return
	}
	f, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := export.Build(f, day, s.ledger.Entries(day), s.cur)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(day, f)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"theme":    s.prefs.Theme(),
		"currency": s.cur.Code(),
	})
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.prefs.ToggleTheme()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"theme": theme})
}
