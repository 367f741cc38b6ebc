package benchmark

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
)

func newScorer() *scoring.Scorer {
	return scoring.NewScorer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEntitiesAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entities() {
		if _, err := e.Dimensions(); err != nil {
			t.Errorf("%s: %v", e.Name, err)
		}
		if seen[e.Name] {
			t.Errorf("duplicate benchmark entity %s", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestLoadScores(t *testing.T) {
	s := newScorer()
	if err := Load(s, Entities()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]float64{
		"The Collectiv (Ideal)":   100,
		"Totalitarian State (NK)": -100,
		"Nazi Germany (1940)":     -96,
		"Meta (Zuckerberg)":       -56,
		"Amazon (Bezos Era)":      -34,
		"X (Elon Musk)":           -26,
		"Putin's Russia":          -80,
		"Trumpism (MAGA)":         -22,
	}
	if s.Len() != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), s.Len())
	}
	for name, score := range want {
		e, ok := s.Get(name)
		if !ok {
			t.Errorf("missing %s", name)
			continue
		}
		if e.Score != score {
			t.Errorf("%s: got %v, want %v", name, e.Score, score)
		}
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	s := newScorer()
	entities := []Entity{
		{Name: "ok", EntryExit: 1},
		{Name: "bad", Culture: 12},
	}

	err := Load(s, entities)
	if !errors.Is(err, scoring.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected no entities registered, got %d", s.Len())
	}
}
