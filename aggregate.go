package vendas

// LineTotals are the derived amounts of a single sale.
type LineTotals struct {
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// Totals computes the line totals of a sale.
func Totals(s Sale) LineTotals {
	q := float64(s.Quantity)
	revenue := s.SalePrice * q
	cost := s.CostPrice * q
	return LineTotals{Revenue: revenue, Cost: cost, Profit: revenue - cost}
}

// DayAggregate summarizes a sequence of sales. It is always recomputed and
// never stored.
type DayAggregate struct {
	Count         int     `json:"count"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalCost     float64 `json:"totalCost"`
	TotalProfit   float64 `json:"totalProfit"`
	MarginPercent float64 `json:"marginPercent"`
}

// Rollup sums the line totals of sales. The margin is profit over cost, and 0
// when nothing was invested.
func Rollup(sales []Sale) DayAggregate {
	var agg DayAggregate
	for _, s := range sales {
		t := Totals(s)
		agg.TotalRevenue += t.Revenue
		agg.TotalCost += t.Cost
		agg.Count++
	}
	agg.TotalProfit = agg.TotalRevenue - agg.TotalCost
	if agg.TotalCost > 0 {
		agg.MarginPercent = agg.TotalProfit / agg.TotalCost * 100
	}
	return agg
}

// ChartPoint is one labelled value of a chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartData is what a chart renderer needs for the two charts of a day.
type ChartData struct {
	// Distribution compares what was invested with what was earned.
	Distribution []ChartPoint `json:"distribution"`
	// Overview shows revenue, cost and profit side by side.
	Overview []ChartPoint `json:"overview"`
}

// Charts derives the chart series from an aggregate.
func Charts(agg DayAggregate) ChartData {
	return ChartData{
		Distribution: []ChartPoint{
			{Label: "Investimento", Value: agg.TotalCost},
			{Label: "Lucro", Value: agg.TotalProfit},
		},
		Overview: []ChartPoint{
			{Label: "Vendido", Value: agg.TotalRevenue},
			{Label: "Custo", Value: agg.TotalCost},
			{Label: "Lucro", Value: agg.TotalProfit},
		},
	}
}
