package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS alignment_reports (
		report_id    UUID PRIMARY KEY,
		generated_at TIMESTAMPTZ NOT NULL,
		entity_count INTEGER NOT NULL,
		rows         JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, r *report.Report) error {
	rowsJSON, err := json.Marshal(r.Rows)
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO alignment_reports (report_id, generated_at, entity_count, rows)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (report_id) DO UPDATE SET
			generated_at = EXCLUDED.generated_at,
			entity_count = EXCLUDED.entity_count,
			rows = EXCLUDED.rows`,
		r.ID, r.GeneratedAt, len(r.Rows), rowsJSON,
	)
	return err
}

func (s *PostgresStore) GetReport(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	r := &report.Report{}
	var rowsJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT report_id, generated_at, rows
		FROM alignment_reports WHERE report_id = $1`, id,
	).Scan(&r.ID, &r.GeneratedAt, &rowsJSON)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rowsJSON, &r.Rows); err != nil {
		return nil, fmt.Errorf("unmarshal rows: %w", err)
	}
	r.GeneratedAt = r.GeneratedAt.UTC()
	return r, nil
}

func (s *PostgresStore) ListReports(ctx context.Context, limit int) ([]*ReportSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT report_id, generated_at, entity_count, created_at
		FROM alignment_reports
		ORDER BY generated_at DESC
		LIMIT $1`, listLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ReportSummary
	for rows.Next() {
		rs := &ReportSummary{}
		if err := rows.Scan(&rs.ID, &rs.GeneratedAt, &rs.EntityCount, &rs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}
