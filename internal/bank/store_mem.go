package bank

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/scriptmark/scriptmark/internal/grade"
)

// MemStore is an in-memory Store for tests and dev runs without a
// database.
type MemStore struct {
	mu      sync.RWMutex
	exams   map[string]Exam
	reports map[string]StoredReport
}

func NewMemStore() *MemStore {
	return &MemStore{
		exams:   map[string]Exam{},
		reports: map[string]StoredReport{},
	}
}

func (s *MemStore) PutExam(_ context.Context, e Exam) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.exams[e.ID]; ok {
		e.CreatedAt = prev.CreatedAt
	} else if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}
	s.exams[e.ID] = cloneExam(e)
	return nil
}

func (s *MemStore) GetExam(ctx context.Context, id string) (Exam, error) {
	e, err := s.GetExamFull(ctx, id)
	if err != nil {
		return Exam{}, err
	}
	Sanitize(&e)
	return e, nil
}

func (s *MemStore) GetExamFull(_ context.Context, id string) (Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.exams[id]
	if !ok {
		return Exam{}, ErrExamNotFound
	}
	return cloneExam(e), nil
}

func (s *MemStore) ListExams(_ context.Context, opts ListOpts) ([]ExamSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ExamSummary
	for _, e := range s.exams {
		if opts.Q != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(opts.Q)) {
			continue
		}
		out = append(out, ExamSummary{
			ID:            e.ID,
			Title:         e.Title,
			QuestionCount: len(e.Questions),
			CreatedAt:     e.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return page(out, opts.Offset, opts.Limit), nil
}

func (s *MemStore) DeleteExam(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exams[id]; !ok {
		return ErrExamNotFound
	}
	delete(s.exams, id)
	for rid, r := range s.reports {
		if r.ExamID == id {
			delete(s.reports, rid)
		}
	}
	return nil
}

func (s *MemStore) SaveReport(_ context.Context, r StoredReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	s.reports[r.ID] = r
	return nil
}

func (s *MemStore) GetReport(_ context.Context, id string) (StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return StoredReport{}, ErrReportNotFound
	}
	return r, nil
}

func (s *MemStore) ListReports(_ context.Context, opts ReportListOpts) ([]StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []StoredReport
	for _, r := range s.reports {
		if opts.ExamID != "" && r.ExamID != opts.ExamID {
			continue
		}
		if opts.StudentID != "" && r.StudentID != opts.StudentID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return page(out, opts.Offset, opts.Limit), nil
}

func cloneExam(e Exam) Exam {
	out := e
	out.Questions = make([]grade.Question, len(e.Questions))
	copy(out.Questions, e.Questions)
	return out
}

func page[T any](in []T, offset, limit int) []T {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return nil
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end]
}
