package grade

import (
	"context"
	"fmt"
	"strings"

	"github.com/scriptmark/scriptmark/internal/extract"
	"github.com/scriptmark/scriptmark/internal/segment"
	"github.com/scriptmark/scriptmark/internal/textproc"
)

// Extractor produces text (and, on OCR paths, a 0-100 confidence) from
// an uploaded answer-sheet file.
type Extractor interface {
	FromFile(ctx context.Context, path string) (extract.Extraction, error)
}

// SheetGrader grades a whole scanned answer sheet: extract, gate on OCR
// confidence, clean, segment per question, then run each segment through
// the single-answer engine. One bad segment never aborts the sheet.
type SheetGrader struct {
	engine        *Engine
	extractor     Extractor
	minConfidence float64
}

type SheetOption func(*SheetGrader)

// WithMinConfidence sets the OCR trust floor (0-100). Sheets below it
// are rejected whole rather than silently graded from garbage text.
func WithMinConfidence(f float64) SheetOption {
	return func(s *SheetGrader) { s.minConfidence = f }
}

func NewSheetGrader(e *Engine, ex Extractor, opts ...SheetOption) *SheetGrader {
	s := &SheetGrader{engine: e, extractor: ex, minConfidence: 30.0}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GradeSheet extracts and grades the answer sheet at path. Extraction
// failures come back as an unsuccessful report, not an error; the caller
// always has something to render or queue for review.
func (s *SheetGrader) GradeSheet(ctx context.Context, path string, questions []Question) SheetReport {
	ext, err := s.extractor.FromFile(ctx, path)
	if err != nil {
		return SheetReport{Success: false, Message: "OCR extraction failed: " + err.Error()}
	}
	return s.GradeExtracted(ctx, ext, questions)
}

// GradeExtracted grades already-extracted text against the questions.
func (s *SheetGrader) GradeExtracted(ctx context.Context, ext extract.Extraction, questions []Question) SheetReport {
	if ext.Confidence < s.minConfidence {
		return SheetReport{
			Success:       false,
			Message:       fmt.Sprintf("Low OCR confidence (%.1f%%). Answer sheet may be unclear. Please review manually.", ext.Confidence),
			OCRConfidence: ext.Confidence,
			ExtractedText: ext.Text,
		}
	}

	cleaned := textproc.CleanExtracted(ext.Text)
	answers := segment.Answers(cleaned, len(questions))

	results := make([]QuestionResult, 0, len(questions))
	var totalMarks, maxTotalMarks float64
	reviewCount := 0

	for i, q := range questions {
		num := i + 1
		maxMarks := q.Points
		if maxMarks <= 0 {
			maxMarks = 1.0
		}
		maxTotalMarks += maxMarks

		var r QuestionResult
		if ans, ok := answers[num]; ok {
			r = s.gradeSegment(ctx, q, ans, maxMarks, ext.Confidence)
		} else {
			r = QuestionResult{
				MaxMarks:    maxMarks,
				Feedback:    "No answer found for this question in the scanned sheet.",
				NeedsManual: true,
			}
		}
		r.QuestionNumber = num
		r.QuestionID = q.ID
		if r.QuestionID == "" {
			r.QuestionID = fmt.Sprintf("q%d", num)
		}
		r.QuestionText = q.Prompt

		if r.NeedsManual {
			reviewCount++
		}
		totalMarks += r.MarksAwarded
		results = append(results, r)
	}

	percentage := 0.0
	if maxTotalMarks > 0 {
		percentage = round2(totalMarks / maxTotalMarks * 100)
	}

	return SheetReport{
		Success:       true,
		Message:       fmt.Sprintf("Grading completed. %d question(s) flagged for manual review.", reviewCount),
		OCRConfidence: round2(ext.Confidence),
		ExtractedText: cleaned,
		PageTexts:     ext.Pages,
		Results:       results,
		Summary: &SheetSummary{
			TotalMarks:      round2(totalMarks),
			MaxTotalMarks:   round2(maxTotalMarks),
			Percentage:      percentage,
			QuestionsGraded: len(results),
			NeedsManual:     reviewCount,
		},
	}
}

// gradeSegment grades one recovered answer span. Implausibly short
// segments and local grading errors degrade to a manual-review result
// for this question only.
func (s *SheetGrader) gradeSegment(ctx context.Context, q Question, answer string, maxMarks, confidence float64) QuestionResult {
	cleaned := textproc.CleanExtracted(answer)
	if len(strings.TrimSpace(cleaned)) < 3 {
		return QuestionResult{
			ExtractedAnswer: cleaned,
			MaxMarks:        maxMarks,
			Feedback:        "Answer appears empty or unreadable. Please review manually.",
			NeedsManual:     true,
		}
	}

	res, err := s.engine.GradeAnswer(ctx, Request{
		Answer:         cleaned,
		References:     q.References,
		MaxPoints:      maxMarks,
		QuestionType:   q.Type,
		AnswerKey:      q.AnswerKey,
		MandatoryTerms: q.MandatoryTerms,
		MinWords:       q.MinWords,
		MaxWords:       q.MaxWords,
	})
	if err != nil {
		return QuestionResult{
			ExtractedAnswer: cleaned,
			MaxMarks:        maxMarks,
			Feedback:        fmt.Sprintf("Grading error: %v. Please review manually.", err),
			NeedsManual:     true,
		}
	}

	return QuestionResult{
		ExtractedAnswer: cleaned,
		MarksAwarded:    res.Score,
		MaxMarks:        maxMarks,
		Feedback:        res.Feedback,
		NeedsManual:     res.NeedsManual,
		Confidence:      confidence,
		Similarity:      round3(res.Similarity),
		Grammar:         res.Grammar,
	}
}
