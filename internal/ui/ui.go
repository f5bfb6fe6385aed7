// Package ui models the page's cosmetic behaviours (scroll-spy, the
// scroll-to-top button, the theme toggle) as events handled by pure
// functions. The embedded client script applies the same thresholds.
package ui

import "github.com/ziadkadry99/learnsite/internal/theme"

const (
	// DefaultScrollOffset is how far below the viewport top a heading may
	// sit and still count as the active section.
	DefaultScrollOffset = 96
	// DefaultScrollTopThreshold is the scroll offset after which the
	// scroll-to-top button shows.
	DefaultScrollTopThreshold = 300
)

// ScrollTopVisible reports whether the scroll-to-top button should show.
func ScrollTopVisible(offsetY, threshold float64) bool {
	return offsetY > threshold
}

// ThemeToggle is the state of the theme toggle button.
type ThemeToggle struct {
	RootClass string
	Label     string
	Pressed   bool
}

// ThemeToggleState derives the root class and button state for t.
func ThemeToggleState(t theme.Theme) ThemeToggle {
	st := ThemeToggle{Label: t.ToggleLabel(), Pressed: t.IsDark()}
	if t.IsDark() {
		st.RootClass = theme.RootClass
	}
	return st
}
