package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/learnsite/internal/db"
)

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
	}
	if err := s.Set(ctx, "site-theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "site-theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("Get = %q, %v, %v; want dark", v, ok, err)
	}
	if err := s.Set(ctx, "site-theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "site-theme"); v != "light" {
		t.Errorf("after overwrite got %q, want light", v)
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()
	exerciseStore(t, NewSQLite(database))
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set(context.Background(), "completed:html", `["a"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(context.Background(), "completed:html")
	if err != nil || !ok || v != `["a"]` {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestDisabled(t *testing.T) {
	var s Disabled
	if _, _, err := s.Get(context.Background(), "k"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get err = %v, want ErrUnavailable", err)
	}
	if err := s.Set(context.Background(), "k", "v"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Set err = %v, want ErrUnavailable", err)
	}
}

func TestOpenDrivers(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		opts    Options
		wantErr bool
	}{
		{Options{}, false},
		{Options{Driver: DriverMemory}, false},
		{Options{Driver: DriverDisabled}, false},
		{Options{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "kv.db")}, false},
		{Options{Driver: DriverSQLite}, true},
		{Options{Driver: DriverRedis}, true},
		{Options{Driver: "etcd"}, true},
	}
	for _, tt := range tests {
		s, closeFn, err := Open(ctx, tt.opts)
		if (err != nil) != tt.wantErr {
			t.Errorf("Open(%+v) err = %v, wantErr %v", tt.opts, err, tt.wantErr)
			continue
		}
		if err == nil {
			if s == nil {
				t.Errorf("Open(%+v) returned nil store", tt.opts)
			}
			closeFn()
		}
	}
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("LEARNSITE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LEARNSITE_TEST_REDIS_ADDR not set")
	}
	s, err := OpenRedis(context.Background(), addr, "learnsite-test:")
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}
