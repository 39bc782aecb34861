package ports

import (
	"context"

	"github.com/google/uuid"

	"leadscope/models"
)

// LeadRepository is the data-access collaborator. All network and storage
// I/O happens behind it, before the composition engine runs.
type LeadRepository interface {
	// FetchLeadWithLatestRun returns the lead plus its most recently
	// created analysis run. The latest run is authoritative for display;
	// a lead with no runs returns a nil record and no error.
	FetchLeadWithLatestRun(ctx context.Context, leadID uuid.UUID) (*models.Lead, *models.AnalysisRecord, error)

	// ListLeads returns all leads ordered by score descending.
	ListLeads(ctx context.Context) ([]*models.Lead, error)
}
