package vendas

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/etnz/vendas/date"
)

// EncodeLedger writes days as a single JSON object keyed by day (DD/MM/YYYY).
// Days are written in ascending calendar order and sales in append order, so
// that the same ledger always produces the same bytes.
func EncodeLedger(w io.Writer, days map[date.Date][]Sale) error {
	keys := slices.SortedFunc(maps.Keys(days), date.Date.Compare)

	obj := &jsonObjectWriter{}
	for _, day := range keys {
		sales := days[day]
		if sales == nil {
			sales = []Sale{}
		}
		obj.Append(day.String(), sales)
	}
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeLedger reads a JSON object written by EncodeLedger.
// Two keys naming the same day (e.g. "1/1/2024" and "01/01/2024") are an
// error: their sales would otherwise be merged in no particular order.
func DecodeLedger(r io.Reader) (map[date.Date][]Sale, error) {
	var raw map[string][]Sale
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	days := make(map[date.Date][]Sale, len(raw))
	keys := make(map[date.Date]string, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		day, err := date.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("invalid day key in ledger: %w", err)
		}
		if prev, dup := keys[day]; dup {
			return nil, fmt.Errorf("duplicate day %s in ledger: keys %q and %q", day, prev, key)
		}
		keys[day] = key
		sales := raw[key]
		if sales == nil {
			sales = []Sale{}
		}
		days[day] = sales
	}
	return days, nil
}
