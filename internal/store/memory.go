package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
)

// MemoryStore keeps snapshots for the life of the process. Used when no
// database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	report    *report.Report
	createdAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[uuid.UUID]memoryEntry)}
}

func (s *MemoryStore) SaveReport(_ context.Context, r *report.Report) error {
	cp := *r
	cp.Rows = append([]report.Row(nil), r.Rows...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = memoryEntry{report: &cp, createdAt: time.Now().UTC()}
	return nil
}

func (s *MemoryStore) GetReport(_ context.Context, id uuid.UUID) (*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *e.report
	cp.Rows = append([]report.Row(nil), e.report.Rows...)
	return &cp, nil
}

func (s *MemoryStore) ListReports(_ context.Context, limit int) ([]*ReportSummary, error) {
	s.mu.RLock()
	out := make([]*ReportSummary, 0, len(s.reports))
	for _, e := range s.reports {
		out = append(out, &ReportSummary{
			ID:          e.report.ID,
			GeneratedAt: e.report.GeneratedAt,
			EntityCount: len(e.report.Rows),
			CreatedAt:   e.createdAt,
		})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	if n := listLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
