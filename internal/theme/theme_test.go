package theme

import (
	"context"
	"testing"

	"github.com/ziadkadry99/learnsite/internal/kv"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"dark", Dark},
		{"light", Light},
		{"", Light},
		{"DARK", Light},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if Light.ToggleLabel() != "Dark Mode" {
		t.Errorf("light label = %q", Light.ToggleLabel())
	}
	if Dark.ToggleLabel() != "Light Mode" {
		t.Errorf("dark label = %q", Dark.ToggleLabel())
	}
	if Light.Toggled() != Dark || Dark.Toggled() != Light {
		t.Error("Toggled should flip")
	}
}

func TestPreferenceToggle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	p := NewPreference(store, nil)

	if p.Current(ctx) != Light {
		t.Fatal("default should be light")
	}
	if p.Toggle(ctx) != Dark {
		t.Fatal("toggle should give dark")
	}
	if v, _, _ := store.Get(ctx, StorageKey); v != "dark" {
		t.Errorf("stored %q, want dark", v)
	}
	if p.Toggle(ctx) != Light {
		t.Fatal("second toggle should give light")
	}
}

func TestPreferenceUnavailableStore(t *testing.T) {
	ctx := context.Background()
	p := NewPreference(kv.Disabled{}, nil)
	if p.Current(ctx) != Light {
		t.Error("unavailable store should read as light")
	}
	if p.Toggle(ctx) != Dark {
		t.Error("toggle should still report dark")
	}
	if p.Current(ctx) != Light {
		t.Error("nothing should persist")
	}
}
