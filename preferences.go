package vendas

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Theme is the display theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme parses "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark:
		return t, nil
	default:
		return Light, fmt.Errorf("unknown theme %q want %q or %q", s, Light, Dark)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Preferences are the user settings persisted beside the ledger.
type Preferences struct {
	mu      sync.Mutex
	storage Storage
	theme   Theme
	session bool
}

// LoadPreferences reads the preferences from storage. Missing or unreadable
// values fall back to the light theme and no active session.
func LoadPreferences(storage Storage) (*Preferences, error) {
	p := &Preferences{storage: storage, theme: Light}

	v, ok, err := storage.Get(ThemeKey)
	if err != nil {
		return nil, &StorageError{Op: "get", Key: ThemeKey, Err: err}
	}
	if ok {
		if t, err := ParseTheme(v); err == nil {
			p.theme = t
		}
	}

	v, ok, err = storage.Get(SessionKey)
	if err != nil {
		return nil, &StorageError{Op: "get", Key: SessionKey, Err: err}
	}
	if ok {
		p.session, _ = strconv.ParseBool(v)
	}
	return p, nil
}

// Theme returns the current theme.
func (p *Preferences) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme persists t.
func (p *Preferences) SetTheme(t Theme) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.setTheme(t)
}

func (p *Preferences) setTheme(t Theme) error {
	if err := p.storage.Set(ThemeKey, string(t)); err != nil {
		return &StorageError{Op: "set", Key: ThemeKey, Err: err}
	}
	p.theme = t
	return nil
}

// ToggleTheme switches between light and dark and returns the new theme.
func (p *Preferences) ToggleTheme() (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	t := p.theme.Toggle()
	if err := p.setTheme(t); err != nil {
		return p.theme, err
	}
	return t, nil
}

// SessionActive reports whether the passcode was entered.
func (p *Preferences) SessionActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

// SetSession persists the session flag.
func (p *Preferences) SetSession(active bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.storage.Set(SessionKey, strconv.FormatBool(active)); err != nil {
		return &StorageError{Op: "set", Key: SessionKey, Err: err}
	}
	p.session = active
	return nil
}
