package training

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendComputesDifferenceAndCounts(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "training.json"))

	n, err := s.Append(Example{
		Question:      "Define osmosis.",
		StudentAnswer: "Water moves across a membrane.",
		AIScore:       6.5,
		TeacherScore:  8.0,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if n != 1 {
		t.Fatalf("Append count = %d, want 1", n)
	}

	n, err = s.Append(Example{
		Question:        "Define osmosis.",
		StudentAnswer:   "Diffusion of water.",
		AIScore:         9.0,
		TeacherScore:    7.0,
		ScoreDifference: 42, // caller value must be ignored
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if n != 2 {
		t.Fatalf("Append count = %d, want 2", n)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("All = %d examples, want 2", len(all))
	}
	if all[0].ScoreDifference != 1.5 {
		t.Fatalf("first ScoreDifference = %v, want 1.5", all[0].ScoreDifference)
	}
	if all[1].ScoreDifference != -2.0 {
		t.Fatalf("second ScoreDifference = %v, want -2.0", all[1].ScoreDifference)
	}
}

func TestAppendRejectsEmptyFields(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "training.json"))
	if _, err := s.Append(Example{StudentAnswer: "x"}); err == nil {
		t.Fatal("Append without question should fail")
	}
	if _, err := s.Append(Example{Question: "x"}); err == nil {
		t.Fatal("Append without student answer should fail")
	}
}

func TestAllMissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "training.json"))
	all, err := s.All()
	if err != nil {
		t.Fatalf("All on missing file: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("All = %d examples, want 0", len(all))
	}
}

func TestAnalyzePatterns(t *testing.T) {
	if got := AnalyzePatterns(nil); !strings.Contains(got.Message, "No training data") {
		t.Fatalf("empty analysis = %+v", got)
	}

	data := []Example{
		{ScoreDifference: 1.0},  // teacher higher
		{ScoreDifference: -0.5}, // teacher lower
		{ScoreDifference: 0.05}, // agreement
		{ScoreDifference: 2.0},  // teacher higher
	}
	got := AnalyzePatterns(data)
	if got.TotalExamples != 4 {
		t.Fatalf("TotalExamples = %d, want 4", got.TotalExamples)
	}
	if got.TeacherScoredHigher != 2 || got.TeacherScoredLower != 1 || got.SimilarScores != 1 {
		t.Fatalf("counts = %d/%d/%d, want 2/1/1",
			got.TeacherScoredHigher, got.TeacherScoredLower, got.SimilarScores)
	}
	want := math.Round((1.0-0.5+0.05+2.0)/4*100) / 100
	if got.AverageScoreDifference != want {
		t.Fatalf("AverageScoreDifference = %v, want %v", got.AverageScoreDifference, want)
	}
	if got.Recommendation != "Consider adjusting thresholds" {
		t.Fatalf("Recommendation = %q", got.Recommendation)
	}

	near := AnalyzePatterns([]Example{{ScoreDifference: 0.2}, {ScoreDifference: -0.1}})
	if near.Recommendation != "Current thresholds seem appropriate" {
		t.Fatalf("Recommendation = %q", near.Recommendation)
	}
}
