package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, round := range []struct {
		difficulty string
		score      int
	}{
		{"easy", 4},
		{"medium", 12},
		{"hard", 7},
		{"medium", 9},
	} {
		if _, err := store.SaveScore(round.difficulty, round.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Difficulty != "medium" {
		t.Errorf("top entry = %+v, expected medium/12", scores[0])
	}
	if scores[1].Score != 9 || scores[2].Score != 7 {
		t.Errorf("scores not sorted descending: %d, %d", scores[1].Score, scores[2].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty store reports 0, not an error
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, expected 0", high)
	}

	store.SaveScore("easy", 5)
	store.SaveScore("hard", 20)
	store.SaveScore("medium", 11)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 20 {
		t.Errorf("high score = %d, expected 20", high)
	}

	hardHigh, err := store.HighScoreFor("hard")
	if err != nil {
		t.Fatalf("HighScoreFor() failed: %v", err)
	}
	if hardHigh != 20 {
		t.Errorf("hard high score = %d, expected 20", hardHigh)
	}

	easyHigh, err := store.HighScoreFor("easy")
	if err != nil {
		t.Fatalf("HighScoreFor() failed: %v", err)
	}
	if easyHigh != 5 {
		t.Errorf("easy high score = %d, expected 5", easyHigh)
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	prev := 0
	for _, score := range []int{3, 10, 6, 10, 2} {
		store.SaveScore("medium", score)
		high, err := store.HighScore()
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high < prev {
			t.Errorf("high score decreased from %d to %d", prev, high)
		}
		prev = high
	}
	if prev != 10 {
		t.Errorf("final high score = %d, expected 10", prev)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("easy", 8)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
}
