package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"leadscope/domain/core"
	"leadscope/domain/tier"
	"leadscope/models"
)

// leadRow is the view model for one dashboard table row or card.
type leadRow struct {
	Lead *models.Lead
	Tier tier.Descriptor
}

type indexView struct {
	Rows  []leadRow
	Count int
}

// handleIndex renders the dashboard page with the lead table.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := a.leadRows(r)
	if err != nil {
		log.Printf("[UI] failed to load leads for index: %v", err)
		http.Error(w, "Failed to load leads", http.StatusInternalServerError)
		return
	}
	a.renderTemplate(w, "index.html", view)
}

// handleLeadsTable re-renders only the lead table for HTMX refreshes.
func (a *App) handleLeadsTable(w http.ResponseWriter, r *http.Request) {
	view, err := a.leadRows(r)
	if err != nil {
		log.Printf("[UI] failed to load leads for table: %v", err)
		http.Error(w, "Failed to load leads", http.StatusInternalServerError)
		return
	}
	if !isHTMX(r) {
		a.renderTemplate(w, "index.html", view)
		return
	}
	a.renderTemplate(w, "lead_table.html", view)
}

func (a *App) leadRows(r *http.Request) (indexView, error) {
	leads, err := a.leads.ListLeads(r.Context())
	if err != nil {
		return indexView{}, err
	}
	rows := make([]leadRow, len(leads))
	for i, lead := range leads {
		rows[i] = leadRow{Lead: lead, Tier: tier.Classify(lead.ClampedScore())}
	}
	return indexView{Rows: rows, Count: len(rows)}, nil
}

// handleLeadModal builds and returns the analysis-detail modal for a lead.
// Partial fragment failures degrade inside the builder; only a missing lead
// or a missing layout config fails the request.
func (a *App) handleLeadModal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid lead id", http.StatusBadRequest)
		return
	}

	lead, rec, err := a.leads.FetchLeadWithLatestRun(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			http.Error(w, "Lead not found", http.StatusNotFound)
			return
		}
		log.Printf("[UI] failed to fetch lead %s: %v", id, err)
		http.Error(w, "Failed to load lead", http.StatusInternalServerError)
		return
	}

	markup, err := a.builder.Build(lead, rec)
	if err != nil {
		log.Printf("[UI] modal build failed for lead %s: %v", lead.Handle, err)
		// The caller owns the retry affordance; surface the failure plainly.
		http.Error(w, "Failed to build analysis modal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(markup)); err != nil {
		log.Printf("[UI] failed to write modal response: %v", err)
	}
}
