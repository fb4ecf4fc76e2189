package logfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveLatestPlainPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Game.log")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveLatest(path)
	if err != nil {
		t.Fatalf("ResolveLatest() error = %v", err)
	}
	if got != path {
		t.Errorf("ResolveLatest() = %q, want %q", got, path)
	}
}

func TestResolveLatestPicksNewest(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "Game-backup.log")
	current := filepath.Join(dir, "Game.log")
	for _, p := range []string{old, current} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveLatest(filepath.Join(dir, "*.log"))
	if err != nil {
		t.Fatalf("ResolveLatest() error = %v", err)
	}
	if got != current {
		t.Errorf("ResolveLatest() = %q, want newest %q", got, current)
	}
}

func TestResolveLatestNoMatch(t *testing.T) {
	dir := t.TempDir()
	if _, err := ResolveLatest(filepath.Join(dir, "*.log")); err == nil {
		t.Error("ResolveLatest() should fail when nothing matches")
	}
}
