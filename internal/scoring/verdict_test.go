package scoring

import (
	"errors"
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Verdict
	}{
		{100, VerdictZion},
		{80, VerdictZion},
		{79.9, VerdictFree},
		{20, VerdictFree},
		{19.9, VerdictMixed},
		{0, VerdictMixed},
		{-20, VerdictMixed},
		{-20.1, VerdictExtractive},
		{-56, VerdictExtractive},
		{-80, VerdictExtractive},
		{-80.1, VerdictDystopia},
		{-100, VerdictDystopia},
		{math.Inf(1), VerdictZion},
		{math.Inf(-1), VerdictDystopia},
	}

	for _, tt := range tests {
		got, err := Classify(tt.score)
		if err != nil {
			t.Fatalf("Classify(%v): unexpected error %v", tt.score, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClassifyNaN(t *testing.T) {
	_, err := Classify(math.NaN())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// Bands must be contiguous and monotone: walking up the line never moves to a
// lower band.
func TestClassifyMonotone(t *testing.T) {
	rank := map[Verdict]int{}
	for i, v := range Verdicts() {
		rank[v] = len(Verdicts()) - i
	}

	prev := 0
	for s := -120.0; s <= 120.0; s += 0.5 {
		v, err := Classify(s)
		if err != nil {
			t.Fatalf("Classify(%v): %v", s, err)
		}
		r, ok := rank[v]
		if !ok {
			t.Fatalf("Classify(%v) returned unknown verdict %q", s, v)
		}
		if r < prev {
			t.Fatalf("Classify(%v) = %q dropped a band", s, v)
		}
		prev = r
	}
}
