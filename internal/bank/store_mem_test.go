package bank

import (
	"context"
	"errors"
	"testing"

	"github.com/scriptmark/scriptmark/internal/grade"
)

func demoExam(id, title string) Exam {
	return Exam{
		ID:    id,
		Title: title,
		Questions: []grade.Question{
			{
				ID:         "q1",
				Prompt:     "What is photosynthesis?",
				Type:       "short_answer",
				Points:     5,
				References: []string{"Plants convert light into chemical energy."},
			},
			{
				ID:        "q2",
				Prompt:    "Pick the capital of France.",
				Type:      "multiple_choice",
				Points:    1,
				AnswerKey: []string{"Paris"},
			},
		},
	}
}

func TestMemStoreGetExamStripsKeys(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	if err := s.PutExam(ctx, demoExam("e1", "Biology")); err != nil {
		t.Fatalf("PutExam: %v", err)
	}

	e, err := s.GetExam(ctx, "e1")
	if err != nil {
		t.Fatalf("GetExam: %v", err)
	}
	for _, q := range e.Questions {
		if len(q.References) != 0 || len(q.AnswerKey) != 0 {
			t.Fatalf("student view leaked keys: %+v", q)
		}
	}

	full, err := s.GetExamFull(ctx, "e1")
	if err != nil {
		t.Fatalf("GetExamFull: %v", err)
	}
	if len(full.Questions[0].References) == 0 || len(full.Questions[1].AnswerKey) == 0 {
		t.Fatalf("full view lost keys: %+v", full.Questions)
	}
}

func TestMemStoreSanitizeDoesNotMutateStored(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	if err := s.PutExam(ctx, demoExam("e1", "Biology")); err != nil {
		t.Fatalf("PutExam: %v", err)
	}
	if _, err := s.GetExam(ctx, "e1"); err != nil {
		t.Fatalf("GetExam: %v", err)
	}
	full, err := s.GetExamFull(ctx, "e1")
	if err != nil {
		t.Fatalf("GetExamFull: %v", err)
	}
	if len(full.Questions[0].References) == 0 {
		t.Fatal("sanitized view mutated the stored exam")
	}
}

func TestMemStoreListAndDelete(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	for _, e := range []Exam{demoExam("e1", "Biology midterm"), demoExam("e2", "Chemistry final")} {
		if err := s.PutExam(ctx, e); err != nil {
			t.Fatalf("PutExam: %v", err)
		}
	}

	all, err := s.ListExams(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListExams = %d entries, want 2", len(all))
	}

	filtered, err := s.ListExams(ctx, ListOpts{Q: "chem"})
	if err != nil {
		t.Fatalf("ListExams filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "e2" {
		t.Fatalf("filtered list = %+v, want only e2", filtered)
	}
	if filtered[0].QuestionCount != 2 {
		t.Fatalf("QuestionCount = %d, want 2", filtered[0].QuestionCount)
	}

	if err := s.DeleteExam(ctx, "e1"); err != nil {
		t.Fatalf("DeleteExam: %v", err)
	}
	if _, err := s.GetExam(ctx, "e1"); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("GetExam after delete = %v, want ErrExamNotFound", err)
	}
	if err := s.DeleteExam(ctx, "e1"); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("double delete = %v, want ErrExamNotFound", err)
	}
}

func TestMemStoreReports(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	if err := s.PutExam(ctx, demoExam("e1", "Biology")); err != nil {
		t.Fatalf("PutExam: %v", err)
	}

	r := StoredReport{
		ID:        "r1",
		ExamID:    "e1",
		StudentID: "alice",
		Report:    grade.SheetReport{Success: true, Message: "ok"},
	}
	if err := s.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	got, err := s.GetReport(ctx, "r1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if !got.Report.Success || got.StudentID != "alice" {
		t.Fatalf("GetReport = %+v", got)
	}

	list, err := s.ListReports(ctx, ReportListOpts{ExamID: "e1", StudentID: "alice"})
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListReports = %d entries, want 1", len(list))
	}

	// Deleting the exam cascades to its reports.
	if err := s.DeleteExam(ctx, "e1"); err != nil {
		t.Fatalf("DeleteExam: %v", err)
	}
	if _, err := s.GetReport(ctx, "r1"); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("GetReport after exam delete = %v, want ErrReportNotFound", err)
	}
}
