package logger

import "testing"

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode, false)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.Info("hello", "mode", mode)
	}
}

func TestNopWith(t *testing.T) {
	l := Nop().With("component", "test")
	if l.SugaredLogger == nil {
		t.Fatal("With returned nil sugared logger")
	}
	l.Debug("discarded", "k", 1)
	l.Error("discarded")
}
