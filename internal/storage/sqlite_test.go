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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.GetHighScore()
	if err != nil {
		t.Fatalf("GetHighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty store high score = %v, want 0", hs)
	}

	if err := store.SetHighScore(42.5); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore(120.25); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	hs, err = store.GetHighScore()
	if err != nil {
		t.Fatalf("GetHighScore() failed: %v", err)
	}
	if hs != 120.25 {
		t.Errorf("GetHighScore() = %v, want 120.25", hs)
	}
}

func TestStoreHighScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore(50); err != nil {
		t.Fatalf("SetHighScore(50) failed: %v", err)
	}
	if err := store.SetHighScore(20); err != nil {
		t.Fatalf("SetHighScore(20) failed: %v", err)
	}

	hs, err := store.GetHighScore()
	if err != nil {
		t.Fatalf("GetHighScore() failed: %v", err)
	}
	if hs != 50 {
		t.Errorf("GetHighScore() = %v, want 50", hs)
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SetHighScore(77)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	hs, _ := store.GetHighScore()
	if hs != 77 {
		t.Errorf("GetHighScore() after reopen = %v, want 77", hs)
	}
}

func TestStoreFloatFallback(t *testing.T) {
	store := openTestStore(t)

	v, err := store.GetFloat("missing", 3.5)
	if err != nil || v != 3.5 {
		t.Errorf("GetFloat(missing) = %v, %v; want fallback", v, err)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Score: 10, HighScore: 10, NewBest: true, Duration: 8, Food: 1},
		{Score: 50.5, HighScore: 50.5, NewBest: true, Duration: 40, Food: 4, Golden: 1, EnemyHits: 3},
		{Score: 20, HighScore: 50.5, Duration: 15, EnemyPasses: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 50.5 || top[1].Score != 20 {
		t.Fatalf("TopRuns() = %+v", top)
	}
	if !top[0].NewBest || top[0].Golden != 1 || top[0].EnemyHits != 3 {
		t.Errorf("top run fields lost: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 20 || recent[2].Score != 10 {
		t.Errorf("RecentRuns() order wrong: %+v", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", stats)
	}

	store.SaveRun(RunRecord{Score: 10, Duration: 5, Food: 2})
	store.SaveRun(RunRecord{Score: 30, Duration: 15, Golden: 1})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 30 || stats.AvgScore != 20 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.TotalTime != 20 || stats.TotalFood != 3 {
		t.Errorf("Stats() totals = %+v", stats)
	}
}

func TestStoreClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)
	store.SetHighScore(99)
	store.SaveRun(RunRecord{Score: 99})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("TopRuns() after clear = %d, want 0", len(runs))
	}
	hs, _ := store.GetHighScore()
	if hs != 99 {
		t.Errorf("high score = %v after ClearRuns, want 99", hs)
	}
}
