package nlp

import (
	"math"
	"testing"
)

func TestCosineSelfSimilarity(t *testing.T) {
	v := []float32{0.6, 0.8}
	if got := Cosine(v, v); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Cosine(v, v) = %v, want 1.0", got)
	}
}

func TestCosineZeroVector(t *testing.T) {
	zero := []float32{0, 0, 0}
	v := []float32{1, 0, 0}
	if got := Cosine(zero, v); got != 0.0 {
		t.Errorf("Cosine(zero, v) = %v, want 0.0", got)
	}
	if got := Cosine(v, zero); got != 0.0 {
		t.Errorf("Cosine(v, zero) = %v, want 0.0", got)
	}
	if got := Cosine(zero, zero); got != 0.0 {
		t.Errorf("Cosine(zero, zero) = %v, want 0.0", got)
	}
}

func TestCosineOrthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	if got := Cosine(a, b); math.Abs(got) > 1e-9 {
		t.Errorf("Cosine(orthogonal) = %v, want 0", got)
	}
}

func TestCosineKnownValue(t *testing.T) {
	a := []float32{1, 1}
	b := []float32{1, 0}
	want := 1 / math.Sqrt2
	if got := Cosine(a, b); math.Abs(got-want) > 1e-6 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	normalize(v)
	if math.Abs(float64(v[0])-0.6) > 1e-6 || math.Abs(float64(v[1])-0.8) > 1e-6 {
		t.Errorf("normalize([3 4]) = %v", v)
	}

	zero := []float32{0, 0}
	normalize(zero)
	if zero[0] != 0 || zero[1] != 0 {
		t.Errorf("normalize(zero) changed the vector: %v", zero)
	}
}
