package hermes

import (
	"fmt"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
)

// PublishReport emits one event per row followed by the report event.
// It stops at the first publish error.
func PublishReport(c Client, r *report.Report) error {
	id := r.ID.String()

	for _, row := range r.Rows {
		evt := EntityScoredEvent{
			ReportID:  id,
			Rank:      row.Rank,
			Entity:    row.Name,
			Score:     row.Score,
			Verdict:   row.Verdict,
			Breakdown: row.Breakdown,
		}
		if err := c.Publish(SubjectEntityScored, evt); err != nil {
			return fmt.Errorf("publish %q: %w", row.Name, err)
		}
	}

	verdicts := make(map[scoring.Verdict]int)
	for _, vc := range r.VerdictCounts() {
		verdicts[vc.Verdict] = vc.Count
	}
	evt := ReportGeneratedEvent{
		ReportID:    id,
		GeneratedAt: r.GeneratedAt,
		EntityCount: len(r.Rows),
		Verdicts:    verdicts,
	}
	if err := c.Publish(SubjectReportGenerated(id), evt); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}
