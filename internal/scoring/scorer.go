package scoring

import (
	"log/slog"
	"strings"
)

// Entry is a named, scored entity held by the Scorer.
type Entry struct {
	Name       string     `json:"name"`
	Score      float64    `json:"score"`
	Dimensions Dimensions `json:"-"`
}

// Breakdown returns the entry's dimension values and total.
func (e Entry) Breakdown() Breakdown {
	return e.Dimensions.Breakdown()
}

// Scorer totals entities and keeps them in registration order.
// It is not safe for concurrent mutation.
type Scorer struct {
	order   []string
	entries map[string]Entry
	logger  *slog.Logger
}

// NewScorer creates a Scorer with an empty registry.
func NewScorer(logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{
		entries: make(map[string]Entry),
		logger:  logger,
	}
}

// AddEntity scores dims and stores it under name. Re-adding a name replaces
// the previous entry in place (last write wins, registration position kept).
func (s *Scorer) AddEntity(name string, dims Dimensions) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "entity name is required"}
	}
	if !dims.Valid() {
		return &ValidationError{Field: "dimensions", Reason: "all five dimensions are required"}
	}

	entry := Entry{
		Name:       name,
		Score:      dims.Total(),
		Dimensions: dims,
	}

	if prev, ok := s.entries[name]; ok {
		s.logger.Warn("duplicate entity, overwriting",
			"entity", name,
			"previous_score", prev.Score,
			"score", entry.Score,
		)
	} else {
		s.order = append(s.order, name)
	}
	s.entries[name] = entry

	s.logger.Debug("entity scored", "entity", name, "score", entry.Score)
	return nil
}

// Entities returns a copy of all entries in registration order.
func (s *Scorer) Entities() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name])
	}
	return out
}

// Get returns the entry registered under name.
func (s *Scorer) Get(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Len returns the number of registered entities.
func (s *Scorer) Len() int {
	return len(s.order)
}
