package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsaldanha/fudgeroll/internal/engine"
)

func TestStoreAppendLoad(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "log.jsonl")

	store, err := NewStore(logPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	err = store.Append(&engine.RollSeekedEvent{
		ActorName: "Wizard",
		Formula:   "1d20 + @bonus",
		Target:    17,
		Total:     17,
		Attempts:  9,
	})
	if err != nil {
		t.Fatalf("failed to append roll seeked: %v", err)
	}

	err = store.Append(&engine.CheckResolvedEvent{
		ActorName: "Wizard",
		Check:     "arcana",
		Total:     17,
	})
	if err != nil {
		t.Fatalf("failed to append check resolved: %v", err)
	}

	// Read it back
	events, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load events: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events loaded, got %d", len(events))
	}

	// Verify Event Type Casting works properly
	e1, ok := events[0].(*engine.RollSeekedEvent)
	if !ok {
		t.Errorf("expected first event to be RollSeekedEvent")
	} else if e1.Target != 17 || e1.Attempts != 9 {
		t.Errorf("unexpected seeked event round-trip: %+v", e1)
	}

	e2, ok := events[1].(*engine.CheckResolvedEvent)
	if !ok {
		t.Errorf("expected second event to be CheckResolvedEvent")
	} else if e2.Check != "arcana" {
		t.Errorf("expected arcana check, got %s", e2.Check)
	}
}

func TestTableManagerCreateLoad(t *testing.T) {
	dir := t.TempDir()
	manager := NewTableManager(dir)

	store, err := manager.Create("night-session")
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	store.Close()

	// characters dir must exist for sheet loading
	charsDir := filepath.Join(manager.GetTablePath("night-session"), "characters")
	if stat, err := os.Stat(charsDir); err != nil || !stat.IsDir() {
		t.Fatalf("expected characters directory at %s", charsDir)
	}

	store, err = manager.Load("night-session")
	if err != nil {
		t.Fatalf("failed to load existing table: %v", err)
	}
	store.Close()

	if _, err := manager.Load("no-such-table"); err == nil {
		t.Error("expected error loading a missing table")
	}
}
