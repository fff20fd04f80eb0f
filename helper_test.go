package vendas

import (
	"errors"
	"time"

	"github.com/etnz/vendas/logging"
)

var errDiskFull = errors.New("disk full")

// fakeStorage is an in-memory Storage that counts writes and can be made to fail.
type fakeStorage struct {
	values map[string]string
	writes int
	fail   bool
}

func newFakeStorage() *fakeStorage { return &fakeStorage{values: make(map[string]string)} }

func (s *fakeStorage) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStorage) Set(key, value string) error {
	if s.fail {
		return errDiskFull
	}
	s.writes++
	s.values[key] = value
	return nil
}

// noon is a fixed instant used as "now" in tests.
var noon = time.Date(2026, time.October, 16, 12, 30, 0, 123456789, time.UTC)

func fixedClock(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

// openTestLedger opens a ledger on s with a fixed clock and a silent logger.
func openTestLedger(s Storage) (*Ledger, error) {
	return Open(s, WithClock(fixedClock(noon)), WithLogger(logging.Discard()))
}

func sale(name string, cost, price float64, qty int) Sale {
	return Sale{ProductName: name, CostPrice: cost, SalePrice: price, Quantity: qty, Timestamp: noon.Truncate(time.Millisecond)}
}

func input(name string, cost, price, qty float64) SaleInput {
	return SaleInput{ProductName: name, CostPrice: cost, SalePrice: price, Quantity: qty}
}
