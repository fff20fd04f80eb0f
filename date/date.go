package date

import (
	"encoding"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayKeyFormat is the textual form of a day: DD/MM/YYYY.
const DayKeyFormat = "02/01/2006"

// FileFormat is the form used where '/' is not allowed (file names, URL paths).
const FileFormat = "02-01-2006"

// Permissive read formats (allow single-digit day/month).
const (
	readDayKeyFormat = "2/1/2006"
	readFileFormat   = "2-1-2006"
)

const Day = 24 * time.Hour

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// On returns the calendar day of t in t's location.
func On(t time.Time) Date { return New(t.Date()) }

// Today returns the current date.
func Today() Date { return On(time.Now()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to, or after x.
// It is suitable for slices.SortFunc.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Format returns a textual representation of the date according to layout.
//
//	See the documentation for the [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String formats the date as a day key (DD/MM/YYYY).
func (d Date) String() string { return d.Format(DayKeyFormat) }

// FileName formats the date as DD-MM-YYYY.
func (d Date) FileName() string { return d.Format(FileFormat) }

// Parse parses a day key. It is lenient and accepts "1/2/2025" as well as "01/02/2025".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDayKeyFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, "DD/MM/YYYY", err)
	}
	return On(on), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// ParseRelative parses user input relative to today.
//
// Accepted forms are day keys (DD/MM/YYYY), file form (DD-MM-YYYY), "today",
// "0d", and signed offsets like "-1d", "+2w", "-1m" or "-1y".
func ParseRelative(str string, today Date) (Date, error) {
	str = strings.TrimSpace(str)
	switch strings.ToLower(str) {
	case "", "0d", "today", "hoje":
		return today, nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return New(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		case "y":
			return New(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	if on, err := time.Parse(readFileFormat, str); err == nil {
		return On(on), nil
	}
	return Parse(str)
}

// MarshalText implements encoding.TextMarshaler so that a Date can be used as a json object key.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	on, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = on
	return nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(str))
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json and text marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
var _ encoding.TextMarshaler = (*Date)(nil)
var _ encoding.TextUnmarshaler = (*Date)(nil)
