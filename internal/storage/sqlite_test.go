package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{Size: 9, Mines: 10, Outcome: OutcomeWon, Seed: 1}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)

	saved := []Result{
		{Size: 20, Mines: 40, Outcome: OutcomeLost, Exposed: 12, Moves: 3, Seed: 7},
		{Size: 9, Mines: 10, Outcome: OutcomeWon, Exposed: 71, Moves: 30, Seed: 8},
		{Size: 9, Mines: 10, Outcome: OutcomeAbandoned, Exposed: 5, Moves: 2, Seed: 9},
	}
	for _, r := range saved {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Outcome != OutcomeAbandoned || results[1].Outcome != OutcomeWon {
		t.Errorf("Expected newest first, got %s then %s", results[0].Outcome, results[1].Outcome)
	}

	r := results[1]
	if r.Size != 9 || r.Mines != 10 || r.Exposed != 71 || r.Moves != 30 || r.Seed != 8 {
		t.Errorf("Result fields = %+v, expected the saved win", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSaveResultRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(Result{Size: 3, Outcome: "draw"}); err == nil {
		t.Error("SaveResult() with unknown outcome should fail")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Size: 9, Mines: 10, Outcome: OutcomeWon},
		{Size: 9, Mines: 10, Outcome: OutcomeWon},
		{Size: 9, Mines: 10, Outcome: OutcomeLost},
		{Size: 9, Mines: 10, Outcome: OutcomeAbandoned},
		{Size: 20, Mines: 40, Outcome: OutcomeLost},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err := store.Stats(9, 10)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 4 || stats.Won != 2 || stats.Lost != 1 {
		t.Errorf("Stats = %+v, expected 4 played, 2 won, 1 lost", stats)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, expected 0.5", stats.WinRate())
	}

	empty, err := store.Stats(5, 5)
	if err != nil {
		t.Fatalf("Stats() on unplayed board failed: %v", err)
	}
	if empty.Played != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on unplayed board = %+v, expected zeros", empty)
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Size: 9, Mines: 10, Outcome: OutcomeWon},
		{Size: 20, Mines: 40, Outcome: OutcomeLost},
		{Size: 20, Mines: 40, Outcome: OutcomeLost},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 board configurations, got %d", len(all))
	}
	if all[0].Size != 20 || all[0].Played != 2 || all[0].Lost != 2 {
		t.Errorf("all[0] = %+v, expected 20x20 with 2 losses", all[0])
	}
	if all[1].Size != 9 || all[1].Won != 1 || all[1].Lost != 0 {
		t.Errorf("all[1] = %+v, expected 9x9 with 1 win", all[1])
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Size: 9, Mines: 10, Outcome: OutcomeLost}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestBoardResults(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Size: 9, Mines: 10, Outcome: OutcomeWon, Seed: 1},
		{Size: 20, Mines: 40, Outcome: OutcomeLost, Seed: 2},
		{Size: 9, Mines: 10, Outcome: OutcomeLost, Seed: 3},
		{Size: 9, Mines: 12, Outcome: OutcomeLost, Seed: 4},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.BoardResults(9, 10, 0)
	if err != nil {
		t.Fatalf("BoardResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results for 9x9/10, got %d", len(results))
	}
	if results[0].Seed != 3 || results[1].Seed != 1 {
		t.Errorf("Expected seeds 3 then 1, got %d then %d", results[0].Seed, results[1].Seed)
	}
}
