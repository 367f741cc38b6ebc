package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
)

// ReportSummary is a report snapshot without its rows.
type ReportSummary struct {
	ID          uuid.UUID `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	EntityCount int       `json:"entity_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists generated reports. GetReport returns (nil, nil) when the
// report does not exist.
type Store interface {
	SaveReport(ctx context.Context, r *report.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*report.Report, error)
	ListReports(ctx context.Context, limit int) ([]*ReportSummary, error)

	Close() error
}

const defaultListLimit = 20

func listLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
