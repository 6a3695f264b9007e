package bank

import "github.com/scriptmark/scriptmark/internal/grade"

// Exam is a stored question set. Questions carry their reference
// answers and answer keys; stores strip those when serving callers
// that must not see them.
type Exam struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Questions []grade.Question `json:"questions"`
	CreatedAt int64            `json:"created_at,omitempty"`
}

// ExamSummary is the listing row: no question bodies.
type ExamSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     int64  `json:"created_at,omitempty"`
}

// StoredReport is a persisted sheet-grading outcome.
type StoredReport struct {
	ID        string            `json:"id"`
	ExamID    string            `json:"exam_id"`
	StudentID string            `json:"student_id,omitempty"`
	Report    grade.SheetReport `json:"report"`
	CreatedAt int64             `json:"created_at,omitempty"`
}
