// Package score persists the best score between sessions.
package score

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Record is the stored scoreboard.
type Record struct {
	HighScore int `json:"highScore"`
}

// Store reads and writes the scoreboard file. Loading a missing file yields
// a zero record; the directory is created on first save. A single Store may
// be shared by concurrent sessions.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the scoreboard under the user config directory, falling
// back to the working directory when none is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scores.json"
	}
	return filepath.Join(dir, "astroid-shooter", "scores.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved record. A missing file is not an error.
func (s *Store) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Record, error) {
	var rec Record
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return rec, nil
		}
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Save writes the record, creating the directory if needed.
func (s *Store) Save(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(rec)
}

func (s *Store) save(rec Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// UpdateHighScore persists score if it beats the stored best and returns the
// high score after the update.
func (s *Store) UpdateHighScore(score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return score, err
	}
	if score <= rec.HighScore {
		return rec.HighScore, nil
	}
	rec.HighScore = score
	if err := s.save(rec); err != nil {
		return rec.HighScore, err
	}
	return rec.HighScore, nil
}
