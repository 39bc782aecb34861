package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"leadscope/domain/core"
	apperrors "leadscope/internal/errors"
	"leadscope/models"
	"leadscope/ports"
)

// LeadRepositoryImpl implements LeadRepository for PostgreSQL
type LeadRepositoryImpl struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new PostgreSQL lead repository
func NewLeadRepository(db *sqlx.DB) ports.LeadRepository {
	return &LeadRepositoryImpl{db: db}
}

// FetchLeadWithLatestRun returns the lead and its most recently created
// analysis run. When multiple runs exist only the latest is returned: it is
// authoritative for display. A lead without runs returns a nil record.
func (r *LeadRepositoryImpl) FetchLeadWithLatestRun(ctx context.Context, leadID uuid.UUID) (*models.Lead, *models.AnalysisRecord, error) {
	var lead models.Lead
	err := r.db.GetContext(ctx, &lead, `
		SELECT id, handle, display_name, avatar_url,
		       is_verified, is_private, is_business,
		       follower_count, following_count, post_count, external_url,
		       analysis_type, score, created_at, updated_at
		FROM leads
		WHERE id = $1`, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, core.NewNotFoundError("lead", leadID.String())
		}
		return nil, nil, apperrors.WithCode(apperrors.CodeDatabaseError,
			apperrors.Wrapf(err, "failed to load lead %s", leadID))
	}

	var rec models.AnalysisRecord
	err = r.db.GetContext(ctx, &rec, `
		SELECT id, lead_id, score, summary, created_at,
		       COALESCE(payloads, 'null'::jsonb) AS payloads,
		       COALESCE(deep_payload, 'null'::jsonb) AS deep_payload,
		       COALESCE(xray_payload, 'null'::jsonb) AS xray_payload,
		       COALESCE(body, 'null'::jsonb) AS body
		FROM analysis_runs
		WHERE lead_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Not an error: light leads may never have a stored run.
			return &lead, nil, nil
		}
		return nil, nil, apperrors.WithCode(apperrors.CodeDatabaseError,
			apperrors.Wrapf(err, "failed to load analysis runs for lead %s", leadID))
	}

	return &lead, &rec, nil
}

// ListLeads returns all leads ordered by score descending
func (r *LeadRepositoryImpl) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	var leads []*models.Lead
	err := r.db.SelectContext(ctx, &leads, `
		SELECT id, handle, display_name, avatar_url,
		       is_verified, is_private, is_business,
		       follower_count, following_count, post_count, external_url,
		       analysis_type, score, created_at, updated_at
		FROM leads
		ORDER BY score DESC, handle ASC`)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeDatabaseError,
			apperrors.Wrap(err, "failed to list leads"))
	}
	return leads, nil
}
