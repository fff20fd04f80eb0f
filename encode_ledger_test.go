package vendas

import (
	"reflect"
	"strings"
	"testing"

	"github.com/etnz/vendas/date"
)

func TestEncodeLedger(t *testing.T) {
	days := map[date.Date][]Sale{
		date.MustParse("02/01/2024"): {sale("Widget", 10, 15, 2)},
		date.MustParse("31/12/2023"): nil,
	}
	var b strings.Builder
	if err := EncodeLedger(&b, days); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	want := `{"31/12/2023":[],"02/01/2024":[{"productName":"Widget","costPrice":10,"salePrice":15,"quantity":2,"timestamp":"2026-10-16T12:30:00.123Z"}]}`
	if got := b.String(); got != want {
		t.Errorf("EncodeLedger() = %s, want %s", got, want)
	}
}

func TestDecodeLedger(t *testing.T) {
	in := `{
		"16/10/2026": [
			{"productName":"Widget","costPrice":10,"salePrice":15,"quantity":2,"timestamp":"2026-10-16T12:30:00.123Z"}
		],
		"15/10/2026": []
	}`
	got, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	want := map[date.Date][]Sale{
		date.MustParse("16/10/2026"): {sale("Widget", 10, 15, 2)},
		date.MustParse("15/10/2026"): {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeLedger() = %v, want %v", got, want)
	}
}

func TestDecodeLedger_DuplicateDay(t *testing.T) {
	in := `{"1/1/2024":[{"productName":"A","costPrice":1,"salePrice":2,"quantity":1}],"01/01/2024":[]}`
	_, err := DecodeLedger(strings.NewReader(in))
	if err == nil {
		t.Fatal("DecodeLedger() error = nil, want duplicate day error")
	}
	if !strings.Contains(err.Error(), `"01/01/2024"`) || !strings.Contains(err.Error(), `"1/1/2024"`) {
		t.Errorf("DecodeLedger() error = %v, want both keys named", err)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	for _, in := range []string{`[]`, `{"2024-01-02":[]}`, `{"02/01/2024":[{"quantity":"two"}]}`, `not json`} {
		if _, err := DecodeLedger(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeLedger(%s) error = nil, want error", in)
		}
	}
}
