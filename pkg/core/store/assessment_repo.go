package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sme_assessment/pkg/core/assessment"
)

// AssessmentRepo persists assessments. The table is strictly append-only:
// every analysis run inserts a new row and no row is ever updated, which is
// what makes the stored history a usable audit trail for credit decisions.
//
// Schema assumption (migrations managed elsewhere):
//
//	CREATE TABLE IF NOT EXISTS assessments (
//	  id UUID PRIMARY KEY,
//	  business_id TEXT NOT NULL,
//	  payload JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type AssessmentRepo struct{}

// NewAssessmentRepo creates a new repository instance.
func NewAssessmentRepo() *AssessmentRepo {
	return &AssessmentRepo{}
}

// Save inserts one assessment. It never upserts; a duplicate ID is a
// genuine error, not something to silently overwrite.
func (r *AssessmentRepo) Save(ctx context.Context, a *assessment.Assessment) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	query := `
		INSERT INTO assessments (id, business_id, payload, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := pool.Exec(ctx, query, a.ID, a.BusinessID, payload, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to save assessment %s: %w", a.ID, err)
	}
	return nil
}

// Load retrieves a single assessment by ID.
func (r *AssessmentRepo) Load(ctx context.Context, id string) (*assessment.Assessment, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var payload []byte
	err := pool.QueryRow(ctx, `SELECT payload FROM assessments WHERE id = $1`, id).Scan(&payload)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("assessment %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment %s: %w", id, err)
	}

	var a assessment.Assessment
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment %s: %w", id, err)
	}
	return &a, nil
}

// ListByBusiness returns every assessment recorded for a business, newest
// first. Re-analyses accumulate rather than replace, so the full decision
// history comes back.
func (r *AssessmentRepo) ListByBusiness(ctx context.Context, businessID string) ([]*assessment.Assessment, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx,
		`SELECT payload FROM assessments WHERE business_id = $1 ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments for %s: %w", businessID, err)
	}
	defer rows.Close()

	var out []*assessment.Assessment
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		var a assessment.Assessment
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment row: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
