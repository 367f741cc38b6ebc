package hermes

import (
	"time"

	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
)

type ReportGeneratedEvent struct {
	ReportID    string                  `json:"report_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	EntityCount int                     `json:"entity_count"`
	Verdicts    map[scoring.Verdict]int `json:"verdicts"`
}

type EntityScoredEvent struct {
	ReportID  string            `json:"report_id"`
	Rank      int               `json:"rank"`
	Entity    string            `json:"entity"`
	Score     float64           `json:"score"`
	Verdict   scoring.Verdict   `json:"verdict"`
	Breakdown scoring.Breakdown `json:"breakdown"`
}
