// Package theme holds the site-wide light/dark preference.
package theme

import (
	"context"

	"github.com/ziadkadry99/learnsite/internal/kv"
	"github.com/ziadkadry99/learnsite/internal/logger"
)

// StorageKey is the global (not per-collection) preference key.
const StorageKey = "site-theme"

// RootClass is applied to the document root in dark mode.
const RootClass = "dark-mode"

// Theme is the page colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse maps a stored value to a Theme. Anything but "dark" is light.
func Parse(s string) Theme {
	if s == string(Dark) {
		return Dark
	}
	return Light
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == Dark }

// ToggleLabel is the text of the toggle button: it names the mode the
// button switches to.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

// Preference persists the theme in a kv.Store, swallowing storage errors.
type Preference struct {
	store kv.Store
	log   *logger.Logger
}

// NewPreference creates a Preference. A nil logger discards.
func NewPreference(store kv.Store, log *logger.Logger) *Preference {
	if log == nil {
		log = logger.Nop()
	}
	return &Preference{store: store, log: log}
}

// Current returns the stored theme, or Light if none can be read.
func (p *Preference) Current(ctx context.Context) Theme {
	v, ok, err := p.store.Get(ctx, StorageKey)
	if err != nil {
		p.log.Debug("theme preference unreadable", "error", err)
		return Light
	}
	if !ok {
		return Light
	}
	return Parse(v)
}

// Toggle flips and persists the theme, returning the new one.
func (p *Preference) Toggle(ctx context.Context) Theme {
	next := p.Current(ctx).Toggled()
	if err := p.store.Set(ctx, StorageKey, string(next)); err != nil {
		p.log.Debug("theme preference not persisted", "error", err)
	}
	return next
}
