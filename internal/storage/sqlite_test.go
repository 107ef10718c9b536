package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some infinite runs
	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveRun(Run{Mode: ModeInfinite, Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// And one campaign run
	_, err = store.SaveRun(Run{Mode: ModeCampaign, Score: 5, LevelReached: 3})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(ModeInfinite, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	campaignRuns, err := store.TopRuns(ModeCampaign, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(campaignRuns) != 1 {
		t.Fatalf("Expected 1 campaign run, got %d", len(campaignRuns))
	}
	if campaignRuns[0].LevelReached != 3 || campaignRuns[0].Won {
		t.Errorf("Campaign run fields not preserved: %+v", campaignRuns[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Mode: ModeInfinite, Score: (i + 1) * 2})
	}

	runs, err := store.TopRuns(ModeInfinite, 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 10 || runs[1].Score != 8 || runs[2].Score != 6 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	best, err := store.BestScore(ModeInfinite)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty mode, got %d", best)
	}

	store.SaveRun(Run{Mode: ModeInfinite, Score: 10})
	store.SaveRun(Run{Mode: ModeInfinite, Score: 30})
	store.SaveRun(Run{Mode: ModeInfinite, Score: 20})

	best, err = store.BestScore(ModeInfinite)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best score of 30, got %d", best)
	}
}

func TestStoreCampaignWins(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{Mode: ModeCampaign, Score: 5, LevelReached: 5, Won: true})
	store.SaveRun(Run{Mode: ModeCampaign, Score: 2, LevelReached: 2})
	store.SaveRun(Run{Mode: ModeInfinite, Score: 25})

	wins, err := store.CampaignWins()
	if err != nil {
		t.Fatalf("CampaignWins() failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("Expected 1 campaign win, got %d", wins)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{Mode: ModeInfinite, Score: 10})
	store.SaveRun(Run{Mode: ModeInfinite, Score: 20})
	store.SaveRun(Run{Mode: ModeCampaign, Score: 3, LevelReached: 2})

	// Clear only infinite runs
	if err := store.ClearRuns(ModeInfinite); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	infRuns, _ := store.TopRuns(ModeInfinite, 10)
	if len(infRuns) != 0 {
		t.Errorf("Expected 0 infinite runs after clear, got %d", len(infRuns))
	}

	campaignRuns, _ := store.TopRuns(ModeCampaign, 10)
	if len(campaignRuns) != 1 {
		t.Errorf("Campaign runs should not be affected by clearing infinite")
	}
}

func TestStoreModeStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{Mode: ModeInfinite, Score: 10})
	store.SaveRun(Run{Mode: ModeInfinite, Score: 20})

	stats, err := store.GetModeStats(ModeInfinite)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.BestScore != 20 {
		t.Errorf("Expected best score 20, got %d", stats.BestScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected avg score 15, got %f", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
