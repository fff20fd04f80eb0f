package vendas

import (
	"math"
	"testing"
)

func TestTotals(t *testing.T) {
	got := Totals(sale("Widget", 10, 15, 2))
	want := LineTotals{Revenue: 30, Cost: 20, Profit: 10}
	if got != want {
		t.Errorf("Totals() = %+v, want %+v", got, want)
	}
}

func TestRollup(t *testing.T) {
	testCases := []struct {
		name  string
		sales []Sale
		want  DayAggregate
	}{
		{
			name: "empty",
			want: DayAggregate{},
		},
		{
			name:  "two sales",
			sales: []Sale{sale("Widget", 10, 15, 2), sale("Gadget", 5, 5, 1)},
			want:  DayAggregate{Count: 2, TotalRevenue: 35, TotalCost: 25, TotalProfit: 10, MarginPercent: 40},
		},
		{
			name:  "free goods have no margin",
			sales: []Sale{sale("Gift", 0, 3, 2)},
			want:  DayAggregate{Count: 1, TotalRevenue: 6, TotalCost: 0, TotalProfit: 6, MarginPercent: 0},
		},
		{
			name:  "loss",
			sales: []Sale{sale("Clearance", 10, 8, 1)},
			want:  DayAggregate{Count: 1, TotalRevenue: 8, TotalCost: 10, TotalProfit: -2, MarginPercent: -20},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Rollup(tc.sales)
			if got.Count != tc.want.Count ||
				!near(got.TotalRevenue, tc.want.TotalRevenue) ||
				!near(got.TotalCost, tc.want.TotalCost) ||
				!near(got.TotalProfit, tc.want.TotalProfit) ||
				!near(got.MarginPercent, tc.want.MarginPercent) {
				t.Errorf("Rollup() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCharts(t *testing.T) {
	c := Charts(Rollup([]Sale{sale("Widget", 10, 15, 2), sale("Gadget", 5, 5, 1)}))
	if len(c.Distribution) != 2 || c.Distribution[0].Value != 25 || c.Distribution[1].Value != 10 {
		t.Errorf("Distribution = %v, want Investimento 25, Lucro 10", c.Distribution)
	}
	if len(c.Overview) != 3 || c.Overview[0].Value != 35 || c.Overview[1].Value != 25 || c.Overview[2].Value != 10 {
		t.Errorf("Overview = %v, want Vendido 35, Custo 25, Lucro 10", c.Overview)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
