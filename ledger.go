package vendas

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/logging"
)

// Ledger maps each known day to its append-only sequence of sales.
//
// Every mutation is written through to the Storage before it becomes visible:
// if the write fails the in-memory state is left untouched. A Ledger is safe
// for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	days    map[date.Date][]Sale
	storage Storage
	clock   Clock
	log     logging.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used to stamp new sales.
func WithClock(c Clock) Option { return func(l *Ledger) { l.clock = c } }

// WithLogger sets the logger.
func WithLogger(log logging.Logger) Option { return func(l *Ledger) { l.log = log } }

// Open loads the ledger persisted in storage. A missing ledger is an empty one.
func Open(storage Storage, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		days:    make(map[date.Date][]Sale),
		storage: storage,
		clock:   SystemClock,
		log:     logging.L,
	}
	for _, opt := range opts {
		opt(l)
	}

	blob, ok, err := storage.Get(LedgerKey)
	if err != nil {
		return nil, &StorageError{Op: "get", Key: LedgerKey, Err: err}
	}
	if !ok || strings.TrimSpace(blob) == "" {
		l.log.Debug("no persisted ledger, starting empty")
		return l, nil
	}
	days, err := DecodeLedger(strings.NewReader(blob))
	if err != nil {
		return nil, err
	}
	l.days = days
	l.log.WithField("days", len(days)).Debug("ledger loaded")
	return l, nil
}

// Today returns the current day according to the ledger's clock.
func (l *Ledger) Today() date.Date { return date.On(l.clock.Now()) }

// EnsureDay creates an empty sequence for day if it does not exist yet.
// It persists only when the day is actually created.
func (l *Ledger) EnsureDay(day date.Date) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.days[day]; exists {
		return nil
	}
	return l.commit(day, []Sale{})
}

// Days returns every known day, most recent first.
func (l *Ledger) Days() []date.Date {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.SortedFunc(maps.Keys(l.days), func(a, b date.Date) int { return b.Compare(a) })
}

// Entries returns a copy of the sales recorded on day, in append order.
// An unknown day has no entries.
func (l *Ledger) Entries(day date.Date) []Sale {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Sale{}, l.days[day]...)
}

// Append validates in, stamps it with the current time and appends it to day.
// Invalid input returns a *ValidationError and leaves the ledger unchanged.
func (l *Ledger) Append(day date.Date, in SaleInput) (Sale, error) {
	sale, err := newSale(in, l.clock.Now())
	if err != nil {
		return Sale{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Clip so that the append never writes into the committed backing array.
	sales := append(slices.Clip(l.days[day]), sale)
	if err := l.commit(day, sales); err != nil {
		return Sale{}, err
	}
	l.log.WithFields(logging.Fields{"day": day.String(), "product": sale.ProductName, "quantity": sale.Quantity}).Debug("sale appended")
	return sale, nil
}

// ResetDay replaces the day's sales with an empty sequence. The day itself
// stays known.
func (l *Ledger) ResetDay(day date.Date) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.commit(day, []Sale{}); err != nil {
		return err
	}
	l.log.WithField("day", day.String()).Info("day reset")
	return nil
}

// SalesIn returns the sales of every day within r, days ascending.
func (l *Ledger) SalesIn(r date.Range) []Sale {
	l.mu.Lock()
	defer l.mu.Unlock()

	var sales []Sale
	for day := range r.Days() {
		sales = append(sales, l.days[day]...)
	}
	return sales
}

// Blob returns the persisted form of the ledger.
func (l *Ledger) Blob() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return encode(l.days)
}

// commit persists the ledger with day set to sales, then publishes it.
// It must be called with l.mu held.
func (l *Ledger) commit(day date.Date, sales []Sale) error {
	next := maps.Clone(l.days)
	next[day] = sales

	blob, err := encode(next)
	if err != nil {
		return err
	}
	if err := l.storage.Set(LedgerKey, blob); err != nil {
		l.log.WithError(err).WithField("day", day.String()).Error("could not persist ledger")
		return &StorageError{Op: "set", Key: LedgerKey, Err: err}
	}
	l.days = next
	return nil
}

func encode(days map[date.Date][]Sale) (string, error) {
	var b strings.Builder
	if err := EncodeLedger(&b, days); err != nil {
		return "", err
	}
	return b.String(), nil
}
