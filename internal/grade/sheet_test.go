package grade

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/scriptmark/scriptmark/internal/extract"
)

type fakeExtractor struct {
	ext extract.Extraction
	err error
}

func (f fakeExtractor) FromFile(context.Context, string) (extract.Extraction, error) {
	return f.ext, f.err
}

func sheetQuestions() []Question {
	return []Question{
		{ID: "q1", Prompt: "Explain the water cycle.", Type: "descriptive", Points: 3,
			References: []string{modelAnswer}},
		{ID: "q2", Prompt: "Name the powerhouse of the cell.", Type: "descriptive", Points: 2,
			References: []string{"The mitochondria is the powerhouse of the cell."}},
	}
}

func newSheetGrader(stub *stubProvider, ex Extractor) *SheetGrader {
	return NewSheetGrader(NewEngine(stubHolder(stub)), ex)
}

func TestGradeSheetLowConfidenceRejectsWholeSheet(t *testing.T) {
	g := newSheetGrader(&stubProvider{def: []float32{1, 0}}, fakeExtractor{
		ext: extract.Extraction{Text: "Q1: perfectly good text", Confidence: 20.0},
	})
	got := g.GradeSheet(context.Background(), "sheet.png", sheetQuestions())
	if got.Success {
		t.Error("confidence 20 under floor 30 must fail the sheet")
	}
	if len(got.Results) != 0 {
		t.Errorf("results = %v, want none", got.Results)
	}
	if !strings.Contains(got.Message, "Low OCR confidence") {
		t.Errorf("message = %q", got.Message)
	}
}

func TestGradeSheetMissingQuestion(t *testing.T) {
	text := "Q1: " + modelAnswer
	g := newSheetGrader(&stubProvider{def: []float32{1, 0}}, fakeExtractor{
		ext: extract.Extraction{Text: text, Confidence: 85.0},
	})
	got := g.GradeSheet(context.Background(), "sheet.png", sheetQuestions())
	if !got.Success {
		t.Fatalf("message = %q", got.Message)
	}
	if len(got.Results) != 2 {
		t.Fatalf("results = %d", len(got.Results))
	}

	q2 := got.Results[1]
	if q2.MarksAwarded != 0 || !q2.NeedsManual {
		t.Errorf("q2 = %+v", q2)
	}
	if !strings.Contains(q2.Feedback, "No answer found") {
		t.Errorf("q2 feedback = %q", q2.Feedback)
	}

	// q2 contributes nothing to the total but its full points to the max.
	if got.Summary.MaxTotalMarks != 5 {
		t.Errorf("max total = %v, want 5", got.Summary.MaxTotalMarks)
	}
	if got.Summary.TotalMarks != got.Results[0].MarksAwarded {
		t.Errorf("total = %v", got.Summary.TotalMarks)
	}
	if got.Summary.NeedsManual != 1 {
		t.Errorf("review count = %d", got.Summary.NeedsManual)
	}
}

func TestGradeSheetAllAnswered(t *testing.T) {
	text := "Q1: " + modelAnswer + "\nQ2: The mitochondria is the powerhouse of the cell and it makes energy."
	g := newSheetGrader(&stubProvider{def: []float32{1, 0}}, fakeExtractor{
		ext: extract.Extraction{Text: text, Confidence: 91.5},
	})
	got := g.GradeSheet(context.Background(), "sheet.pdf", sheetQuestions())
	if !got.Success {
		t.Fatalf("message = %q", got.Message)
	}
	if got.Summary.TotalMarks != 5 || got.Summary.Percentage != 100 {
		t.Errorf("summary = %+v", got.Summary)
	}
	if got.Summary.NeedsManual != 0 {
		t.Errorf("summary = %+v", got.Summary)
	}
	for _, r := range got.Results {
		if r.Confidence != 91.5 {
			t.Errorf("result confidence = %v", r.Confidence)
		}
	}
}

func TestGradeSheetExtractionFailure(t *testing.T) {
	g := newSheetGrader(&stubProvider{}, fakeExtractor{err: errors.New("tesseract not found in PATH")})
	got := g.GradeSheet(context.Background(), "sheet.png", sheetQuestions())
	if got.Success {
		t.Error("extraction failure must fail the sheet")
	}
	if !strings.Contains(got.Message, "extraction failed") {
		t.Errorf("message = %q", got.Message)
	}
}

func TestGradeSheetUnreadableSegment(t *testing.T) {
	text := "Q1: xx\nQ2: The mitochondria is the powerhouse of the cell and it makes energy."
	g := newSheetGrader(&stubProvider{def: []float32{1, 0}}, fakeExtractor{
		ext: extract.Extraction{Text: text, Confidence: 80.0},
	})
	got := g.GradeSheet(context.Background(), "sheet.png", sheetQuestions())
	q1 := got.Results[0]
	if !q1.NeedsManual || q1.MarksAwarded != 0 {
		t.Errorf("q1 = %+v", q1)
	}
	if !strings.Contains(q1.Feedback, "unreadable") {
		t.Errorf("q1 feedback = %q", q1.Feedback)
	}
}

func TestGradeSheetProviderErrorDegradesPerQuestion(t *testing.T) {
	// Provider errors on every embed call: both questions degrade to
	// manual review instead of aborting the sheet.
	text := "Q1: " + modelAnswer + "\nQ2: The mitochondria is the powerhouse of the cell and it makes energy."
	g := newSheetGrader(&stubProvider{err: errors.New("backend down")}, fakeExtractor{
		ext: extract.Extraction{Text: text, Confidence: 80.0},
	})
	got := g.GradeSheet(context.Background(), "sheet.png", sheetQuestions())
	if !got.Success {
		t.Fatalf("per-question failures must not fail the sheet: %q", got.Message)
	}
	for _, r := range got.Results {
		if !r.NeedsManual {
			t.Errorf("result %d should need review: %+v", r.QuestionNumber, r)
		}
		if !strings.Contains(r.Feedback, "Grading error") {
			t.Errorf("feedback = %q", r.Feedback)
		}
	}
	if got.Summary.NeedsManual != 2 {
		t.Errorf("summary = %+v", got.Summary)
	}
}

func TestGradeSheetZeroMaxPercentage(t *testing.T) {
	g := newSheetGrader(&stubProvider{}, fakeExtractor{
		ext: extract.Extraction{Text: "no markers here", Confidence: 80.0},
	})
	got := g.GradeSheet(context.Background(), "sheet.png", nil)
	if got.Summary.Percentage != 0 {
		t.Errorf("percentage = %v", got.Summary.Percentage)
	}
}
