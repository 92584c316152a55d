package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/scroller/internal/core"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("scroller", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("scroller_free", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("scroller", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	free, err := store.TopScores("scroller_free", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(free) != 1 {
		t.Errorf("Expected 1 free run score, got %d", len(free))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("scroller")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("scroller", 100)
	store.SaveScore("scroller", 300)
	store.SaveScore("scroller", 200)

	high, err = store.HighScore("scroller")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("scroller", 100)
	store.SaveRun(RunRecord{GameID: "scroller", Seed: 1, Score: 100})
	store.SaveScore("scroller_free", 300)
	store.SaveRun(RunRecord{GameID: "scroller_free", Seed: 2, Score: 300})

	if err := store.ClearScores("scroller"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("scroller", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.TopRuns("scroller", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	if scores, _ := store.TopScores("scroller_free", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
	if runs, _ := store.TopRuns("scroller_free", 10); len(runs) != 1 {
		t.Error("Other games' runs should not be affected by clearing")
	}
}

func TestStoreSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		GameID:   "scroller",
		Seed:     42,
		Ticks:    1234,
		Distance: 56.5,
		Score:    565,
		Cause:    "crushed",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a UUID, got %q: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("Expected run to be found")
	}
	if run.Seed != 42 || run.Ticks != 1234 || run.Distance != 56.5 || run.Score != 565 || run.Cause != "crushed" {
		t.Errorf("Run not stored faithfully: %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveRunKeepsID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	id, err := store.SaveRun(RunRecord{ID: want, GameID: "scroller"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("Expected ID %s, got %s", want, id)
	}

	// Duplicate IDs are rejected
	if _, err := store.SaveRun(RunRecord{ID: want, GameID: "scroller"}); err == nil {
		t.Error("Expected error for duplicate run ID")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("missing")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for missing run, got %+v", run)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{30, 90, 60, 10} {
		store.SaveRun(RunRecord{GameID: "scroller", Seed: int64(i), Score: score})
	}
	store.SaveRun(RunRecord{GameID: "scroller_free", Score: 1000})

	runs, err := store.TopRuns("scroller", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 90 || runs[1].Score != 60 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Seed != 1 {
		t.Errorf("Expected best run seed 1, got %d", runs[0].Seed)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("Expected 5 recent runs, got %d", len(recent))
	}
}

func TestStoreSaveRunSummary(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRunSummary("scroller", core.RunSummary{
		Seed:     7,
		Ticks:    600,
		Distance: 12.25,
		Score:    122,
		Cause:    "crushed",
	})
	if err != nil {
		t.Fatalf("SaveRunSummary() failed: %v", err)
	}

	run, _ := store.RunByID(id)
	if run == nil || run.GameID != "scroller" || run.Seed != 7 || run.Distance != 12.25 {
		t.Errorf("Summary not stored faithfully: %+v", run)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("scroller")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("scroller", 100)
	store.SaveScore("scroller", 300)
	store.SaveRun(RunRecord{GameID: "scroller", Distance: 30})
	store.SaveRun(RunRecord{GameID: "scroller", Distance: 10})

	stats, err = store.GetGameStats("scroller")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.BestDistance != 30 {
		t.Errorf("Expected best distance 30, got %v", stats.BestDistance)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/subdir/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with home path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under home
	if _, err := os.Stat(filepath.Join(home, "subdir", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
