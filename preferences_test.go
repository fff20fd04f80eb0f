package vendas

import (
	"errors"
	"testing"
)

func TestPreferences_Defaults(t *testing.T) {
	p, err := LoadPreferences(newFakeStorage())
	if err != nil {
		t.Fatalf("LoadPreferences() error = %v", err)
	}
	if p.Theme() != Light {
		t.Errorf("Theme() = %q, want %q", p.Theme(), Light)
	}
	if p.SessionActive() {
		t.Error("SessionActive() = true, want false")
	}
}

func TestPreferences_Persist(t *testing.T) {
	s := newFakeStorage()
	p, _ := LoadPreferences(s)

	if got, err := p.ToggleTheme(); err != nil || got != Dark {
		t.Fatalf("ToggleTheme() = %q, %v, want %q", got, err, Dark)
	}
	if err := p.SetSession(true); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}
	if s.values[ThemeKey] != "dark" || s.values[SessionKey] != "true" {
		t.Errorf("stored values = %v", s.values)
	}

	reloaded, _ := LoadPreferences(s)
	if reloaded.Theme() != Dark || !reloaded.SessionActive() {
		t.Errorf("reloaded preferences = %q, %v, want dark and active", reloaded.Theme(), reloaded.SessionActive())
	}
}

func TestPreferences_ToggleFailure(t *testing.T) {
	s := newFakeStorage()
	p, _ := LoadPreferences(s)
	s.fail = true

	got, err := p.ToggleTheme()
	if !errors.Is(err, ErrStorage) {
		t.Errorf("ToggleTheme() error = %v, want ErrStorage", err)
	}
	if got != Light || p.Theme() != Light {
		t.Errorf("theme changed to %q despite the storage failure", p.Theme())
	}
}

func TestParseTheme(t *testing.T) {
	if th, err := ParseTheme(" Dark "); err != nil || th != Dark {
		t.Errorf("ParseTheme(Dark) = %q, %v", th, err)
	}
	if _, err := ParseTheme("blue"); err == nil {
		t.Error("ParseTheme(blue) error = nil, want error")
	}
}
