package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "secplus.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKV_GetMissing(t *testing.T) {
	repo := openTestStore(t).KVRepo()

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestKV_PutGetOverwrite(t *testing.T) {
	repo := openTestStore(t).KVRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "k", `{"a":1}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, "k", `{"a":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"a":2}` {
		t.Errorf("value = %q, want %q", got, `{"a":2}`)
	}
}

func TestKV_Delete(t *testing.T) {
	repo := openTestStore(t).KVRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "k", "1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete err = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestKV_Keys(t *testing.T) {
	repo := openTestStore(t).KVRepo()
	ctx := context.Background()

	for _, k := range []string{"b", "a", "c"} {
		if err := repo.Put(ctx, k, "1"); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("keys = %v, want [a b c]", keys)
	}
}

func TestKV_QuotaExceeded(t *testing.T) {
	repo := openTestStore(t, WithMaxValueBytes(8)).KVRepo()
	ctx := context.Background()

	err := repo.Put(ctx, "big", strings.Repeat("x", 9))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}

	if err := repo.Put(ctx, "small", "12345678"); err != nil {
		t.Errorf("value at quota should fit: %v", err)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dataHome, "secplus", "secplus.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); !os.IsNotExist(err) {
		t.Errorf("data dir should not be created, stat err = %v", err)
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "db.sqlite")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}
