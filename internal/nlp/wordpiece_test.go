package nlp

import (
	"reflect"
	"testing"
)

func testVocab() *WordPiece {
	return NewWordPiece([]string{
		"photo", "##syn", "##thesis",
		"water", "boils",
		"the", "cell", "##s",
		"is", "a",
	})
}

func TestTokenizeGluedWord(t *testing.T) {
	wp := testVocab()
	got := wp.Tokenize("photosynthesis")
	want := []string{"photo", "##syn", "##thesis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeWholeVocabWord(t *testing.T) {
	wp := testVocab()
	if got := wp.Tokenize("water"); !reflect.DeepEqual(got, []string{"water"}) {
		t.Errorf("got %v", got)
	}
}

func TestTokenizeUndecomposablePassesThrough(t *testing.T) {
	wp := testVocab()
	if got := wp.Tokenize("xyzzy"); !reflect.DeepEqual(got, []string{"xyzzy"}) {
		t.Errorf("unknown word should survive whole, got %v", got)
	}
}

func TestTokenizePlaceholderUntouched(t *testing.T) {
	wp := testVocab()
	got := wp.Tokenize("MATHPLACEHOLDER0")
	if !reflect.DeepEqual(got, []string{"MATHPLACEHOLDER0"}) {
		t.Errorf("placeholder must stay atomic, got %v", got)
	}
}

func TestTokenizePunctuationSplit(t *testing.T) {
	wp := testVocab()
	got := wp.Tokenize("water boils, cells.")
	want := []string{"water", "boils", ",", "cell", "##s", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
