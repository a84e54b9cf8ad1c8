package score

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsZero(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "scores.json"))

	rec, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.HighScore != 0 {
		t.Errorf("HighScore = %d, want 0", rec.HighScore)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "scores.json"))

	if err := st.Save(Record{HighScore: 4120}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rec, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.HighScore != 4120 {
		t.Errorf("HighScore = %d, want 4120", rec.HighScore)
	}
}

func TestLoad_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Load accepted a corrupt file")
	}
}

func TestUpdateHighScore_OnlyRaises(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "scores.json"))

	best, err := st.UpdateHighScore(300)
	if err != nil {
		t.Fatalf("UpdateHighScore: %v", err)
	}
	if best != 300 {
		t.Errorf("best = %d, want 300", best)
	}

	best, err = st.UpdateHighScore(150)
	if err != nil {
		t.Fatalf("UpdateHighScore: %v", err)
	}
	if best != 300 {
		t.Errorf("best after lower score = %d, want 300", best)
	}

	rec, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.HighScore != 300 {
		t.Errorf("stored HighScore = %d, want 300", rec.HighScore)
	}
}
