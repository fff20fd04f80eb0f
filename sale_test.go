package vendas

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSaleInput_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		in       SaleInput
		problems int
	}{
		{"valid", input("Widget", 10, 15, 2), 0},
		{"free sample", input("Sample", 0, 0, 1), 0},
		{"everything wrong", input("", -1, math.NaN(), 0), 4},
		{"infinite price", input("x", math.Inf(1), 1, 1), 1},
		{"huge quantity", input("x", 1, 1, 1e12), 1},
		{"missing prices", input("x", math.NaN(), math.NaN(), 1), 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.problems == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(verr.Problems) != tc.problems {
				t.Errorf("Validate() problems = %q, want %d problems", verr.Problems, tc.problems)
			}
		})
	}
}

func TestSaleInput_ValidateMissing(t *testing.T) {
	err := input("Widget", math.NaN(), 2, math.NaN()).Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	want := []string{"cost price is required", "quantity is required"}
	if strings.Join(verr.Problems, "|") != strings.Join(want, "|") {
		t.Errorf("Validate() problems = %q, want %q", verr.Problems, want)
	}
}

func TestSaleInput_BelowCost(t *testing.T) {
	if !input("x", 10, 9.99, 1).BelowCost() {
		t.Error("BelowCost() = false for a sale under cost")
	}
	if input("x", 10, 10, 1).BelowCost() {
		t.Error("BelowCost() = true for a sale at cost")
	}
}

func TestSale_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(sale("Widget", 10, 15.5, 2))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"productName":"Widget","costPrice":10,"salePrice":15.5,"quantity":2,"timestamp":"2026-10-16T12:30:00.123Z"}`
	if got := string(data); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestSale_UnmarshalJSON(t *testing.T) {
	var s Sale
	err := json.Unmarshal([]byte(`{"productName":"Widget","costPrice":10,"salePrice":15.5,"quantity":2,"timestamp":"2026-10-16T12:30:00.123Z"}`), &s)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := sale("Widget", 10, 15.5, 2); s != want {
		t.Errorf("Unmarshal() = %+v, want %+v", s, want)
	}

	err = json.Unmarshal([]byte(`{"productName":"Widget","timestamp":"yesterday"}`), &s)
	if err == nil || !strings.Contains(err.Error(), "invalid timestamp") {
		t.Errorf("Unmarshal(bad timestamp) error = %v, want invalid timestamp", err)
	}
}
