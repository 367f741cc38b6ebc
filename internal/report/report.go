package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
)

// Row is one classified entity in report order.
type Row struct {
	Rank      int               `json:"rank" yaml:"rank"`
	Name      string            `json:"name" yaml:"name"`
	Score     float64           `json:"score" yaml:"score"`
	Verdict   scoring.Verdict   `json:"verdict" yaml:"verdict"`
	Breakdown scoring.Breakdown `json:"breakdown" yaml:"breakdown"`
}

// Report is an immutable, sorted and classified view of a registry.
type Report struct {
	ID          uuid.UUID `json:"report_id" yaml:"report_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Rows        []Row     `json:"rows" yaml:"rows"`
}

// Build sorts entries by score descending and classifies each one. Entries
// with equal scores keep their registration order.
func Build(entries []scoring.Entry) (*Report, error) {
	sorted := make([]scoring.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	rows := make([]Row, 0, len(sorted))
	for i, e := range sorted {
		v, err := scoring.Classify(e.Score)
		if err != nil {
			return nil, fmt.Errorf("classify %q: %w", e.Name, err)
		}
		rows = append(rows, Row{
			Rank:      i + 1,
			Name:      e.Name,
			Score:     e.Score,
			Verdict:   v,
			Breakdown: e.Breakdown(),
		})
	}

	return &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}, nil
}

// Find returns the row for name.
func (r *Report) Find(name string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Name == name {
			return row, true
		}
	}
	return Row{}, false
}

// VerdictCount is the number of rows in a verdict band.
type VerdictCount struct {
	Verdict scoring.Verdict `json:"verdict" yaml:"verdict"`
	Count   int             `json:"count" yaml:"count"`
}

// VerdictCounts returns a count for every band, highest band first.
// Empty bands are included with a zero count.
func (r *Report) VerdictCounts() []VerdictCount {
	counts := make(map[scoring.Verdict]int)
	for _, row := range r.Rows {
		counts[row.Verdict]++
	}

	out := make([]VerdictCount, 0, len(scoring.Verdicts()))
	for _, v := range scoring.Verdicts() {
		out = append(out, VerdictCount{Verdict: v, Count: counts[v]})
	}
	return out
}
