// Package training persists teacher-corrected grading examples and
// summarizes how the automatic scores drift from teacher scores.
package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Example is one teacher correction of an automatic score.
type Example struct {
	Question        string   `json:"question"`
	StudentAnswer   string   `json:"student_answer"`
	References      []string `json:"reference_answers,omitempty"`
	AIScore         float64  `json:"ai_score"`
	TeacherScore    float64  `json:"teacher_score"`
	TeacherFeedback string   `json:"teacher_feedback,omitempty"`
	ScoreDifference float64  `json:"score_difference"`
}

// FileStore keeps examples as a single JSON array on disk. Writes are
// serialized in-process; the file is not safe for concurrent writers
// from separate processes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append records one example and returns the new total count.
// ScoreDifference is computed here, not trusted from the caller.
func (s *FileStore) Append(ex Example) (int, error) {
	if ex.Question == "" || ex.StudentAnswer == "" {
		return 0, errors.New("question and student_answer are required")
	}
	ex.ScoreDifference = ex.TeacherScore - ex.AIScore

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return 0, err
	}
	data = append(data, ex)
	if err := s.save(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// All returns every stored example. A missing file is an empty set.
func (s *FileStore) All() ([]Example, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]Example, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var data []Example
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, fmt.Errorf("corrupt training file %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FileStore) save(data []Example) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
