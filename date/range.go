package date

import (
	"fmt"
	"iter"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange return a well known period
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days iterates over every day of the range in ascending order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// return the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Identifier computes a short, human readable name for the Range.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s - %s", r.From, r.To)
	}

	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		_, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case Monthly:
		return r.From.Format("01/2006")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		panic("unknown period")
	}
}
