package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/binary-arcade/internal/score"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dir", "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestLoadBestMissing(t *testing.T) {
	store := openTemp(t)
	got, err := store.LoadBest(score.KeySnake)
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("LoadBest() = %d, expected 0", got)
	}
}

func TestSaveBestNeverDecreases(t *testing.T) {
	store := openTemp(t)

	steps := []struct {
		save int
		want int
	}{
		{5, 5},
		{3, 5},
		{12, 12},
		{9, 12},
	}
	for _, s := range steps {
		if err := store.SaveBest(score.KeyFlappy, s.save); err != nil {
			t.Fatalf("SaveBest(%d) failed: %v", s.save, err)
		}
		got, err := store.LoadBest(score.KeyFlappy)
		if err != nil {
			t.Fatalf("LoadBest() failed: %v", err)
		}
		if got != s.want {
			t.Errorf("after SaveBest(%d) LoadBest() = %d, expected %d", s.save, got, s.want)
		}
	}
}

func TestStoreBehindBridge(t *testing.T) {
	store := openTemp(t)
	b := score.NewBridge(store, nil)

	if _, improved := b.Record(score.KeySnake, 4); !improved {
		t.Fatal("first score should improve on 0")
	}

	// A fresh bridge on the same store sees the persisted value.
	b2 := score.NewBridge(store, nil)
	if got := b2.Best(score.KeySnake); got != 4 {
		t.Errorf("Best() = %d, expected 4", got)
	}
}

func TestAllBestAndClear(t *testing.T) {
	store := openTemp(t)
	_ = store.SaveBest(score.KeySnake, 10)
	_ = store.SaveBest(score.KeyFlappy, 3)

	entries, err := store.AllBest()
	if err != nil {
		t.Fatalf("AllBest() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Key != score.KeyFlappy || entries[0].Value != 3 {
		t.Errorf("first entry = %+v", entries[0])
	}

	if err := store.ClearBest(score.KeySnake); err != nil {
		t.Fatalf("ClearBest() failed: %v", err)
	}
	if got, _ := store.LoadBest(score.KeySnake); got != 0 {
		t.Errorf("cleared best = %d, expected 0", got)
	}
}

func TestUnparsableValueReadsZero(t *testing.T) {
	store := openTemp(t)
	if _, err := store.db.Exec(`INSERT INTO best_scores (key, value) VALUES (?, ?)`, "weird", "abc"); err != nil {
		t.Fatal(err)
	}
	if got, err := store.LoadBest("weird"); err != nil || got != 0 {
		t.Errorf("LoadBest() = %d, %v; expected 0, nil", got, err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.arcade/x.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".arcade/x.db") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
