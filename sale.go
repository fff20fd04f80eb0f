package vendas

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// TimestampFormat is the ISO-8601 form used to persist sale timestamps.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Sale is one recorded sale. It is immutable once appended to the Ledger.
type Sale struct {
	ProductName string
	CostPrice   float64 // unit purchase cost
	SalePrice   float64 // unit sale price
	Quantity    int
	Timestamp   time.Time
}

// SaleInput holds the caller supplied fields of a new Sale.
//
// Quantity is a float so that fractional input is rejected instead of
// being silently truncated. A NaN field stands for a missing value.
type SaleInput struct {
	ProductName string  `json:"productName"`
	CostPrice   float64 `json:"costPrice"`
	SalePrice   float64 `json:"salePrice"`
	Quantity    float64 `json:"quantity"`
}

// BelowCost reports whether the unit sale price is lower than the unit cost.
// Callers are expected to ask for a confirmation in that case.
func (in SaleInput) BelowCost() bool { return in.SalePrice < in.CostPrice }

// Validate returns a *ValidationError listing every invalid field, or nil.
func (in SaleInput) Validate() error {
	var problems []string
	if strings.TrimSpace(in.ProductName) == "" {
		problems = append(problems, "product name is required")
	}
	problems = appendPriceProblem(problems, "cost price", in.CostPrice)
	problems = appendPriceProblem(problems, "sale price", in.SalePrice)
	switch q := in.Quantity; {
	case math.IsNaN(q):
		problems = append(problems, "quantity is required")
	case math.IsInf(q, 0) || q != math.Trunc(q):
		problems = append(problems, fmt.Sprintf("quantity %v must be a whole number", q))
	case q < 1:
		problems = append(problems, fmt.Sprintf("quantity %v must be at least 1", q))
	case q > math.MaxInt32:
		problems = append(problems, fmt.Sprintf("quantity %v is too large", q))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// appendPriceProblem reports a missing (NaN) or invalid price.
func appendPriceProblem(problems []string, field string, v float64) []string {
	switch {
	case math.IsNaN(v):
		return append(problems, field+" is required")
	case math.IsInf(v, 0) || v < 0:
		return append(problems, fmt.Sprintf("%s %v must be a non-negative number", field, v))
	}
	return problems
}

// newSale validates in and stamps the record with at.
func newSale(in SaleInput, at time.Time) (Sale, error) {
	if err := in.Validate(); err != nil {
		return Sale{}, err
	}
	return Sale{
		ProductName: strings.TrimSpace(in.ProductName),
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		Quantity:    int(in.Quantity),
		Timestamp:   at.UTC().Truncate(time.Millisecond),
	}, nil
}

// MarshalJSON writes the persisted form of a sale, fields in a fixed order.
func (s Sale) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("productName", s.ProductName).
		Append("costPrice", s.CostPrice).
		Append("salePrice", s.SalePrice).
		Append("quantity", s.Quantity).
		Append("timestamp", s.Timestamp.UTC().Format(TimestampFormat))
	return w.MarshalJSON()
}

func (s *Sale) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProductName string  `json:"productName"`
		CostPrice   float64 `json:"costPrice"`
		SalePrice   float64 `json:"salePrice"`
		Quantity    int     `json:"quantity"`
		Timestamp   string  `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var ts time.Time
	if raw.Timestamp != "" {
		var err error
		ts, err = time.Parse(time.RFC3339Nano, raw.Timestamp)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q for %q: %w", raw.Timestamp, raw.ProductName, err)
		}
		ts = ts.UTC()
	}
	*s = Sale{
		ProductName: raw.ProductName,
		CostPrice:   raw.CostPrice,
		SalePrice:   raw.SalePrice,
		Quantity:    raw.Quantity,
		Timestamp:   ts,
	}
	return nil
}
