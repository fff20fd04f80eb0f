package vendas

import "time"

// Persisted keys.
const (
	LedgerKey  = "salesData"
	SessionKey = "isLoggedIn"
	ThemeKey   = "theme"
)

// Storage is a string key-value store. Get reports ok=false when the key has
// never been written.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock in the local time zone.
var SystemClock Clock = ClockFunc(time.Now)
