package bank

import (
	"context"
	"errors"
)

var (
	ErrExamNotFound   = errors.New("exam not found")
	ErrReportNotFound = errors.New("report not found")
)

type ListOpts struct {
	Q      string
	Limit  int
	Offset int
}

type ReportListOpts struct {
	ExamID    string
	StudentID string
	Limit     int
	Offset    int
}

type Store interface {
	PutExam(ctx context.Context, e Exam) error
	// GetExam returns the exam without reference answers or answer
	// keys, for serving to students.
	GetExam(ctx context.Context, id string) (Exam, error)
	// GetExamFull returns the exam with keys, for grading and export.
	GetExamFull(ctx context.Context, id string) (Exam, error)
	ListExams(ctx context.Context, opts ListOpts) ([]ExamSummary, error)
	DeleteExam(ctx context.Context, id string) error

	SaveReport(ctx context.Context, r StoredReport) error
	GetReport(ctx context.Context, id string) (StoredReport, error)
	ListReports(ctx context.Context, opts ReportListOpts) ([]StoredReport, error)
}

// Sanitize strips grading secrets from an exam in place.
func Sanitize(e *Exam) {
	for i := range e.Questions {
		e.Questions[i].References = nil
		e.Questions[i].AnswerKey = nil
	}
}
