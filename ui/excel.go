package ui

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"leadscope/models"
)

// handleLeadsExport streams the lead sheet as an xlsx download. Workbook
// builds hold the whole sheet in memory, so concurrency is bounded by the
// export semaphore.
func (a *App) handleLeadsExport(w http.ResponseWriter, r *http.Request) {
	if err := a.exportSem.Acquire(r.Context(), 1); err != nil {
		http.Error(w, "Export canceled", http.StatusRequestTimeout)
		return
	}
	defer a.exportSem.Release(1)

	leads, err := a.leads.ListLeads(r.Context())
	if err != nil {
		log.Printf("[Export] failed to list leads: %v", err)
		http.Error(w, "Failed to load leads", http.StatusInternalServerError)
		return
	}

	file, err := buildLeadWorkbook(leads)
	if err != nil {
		log.Printf("[Export] failed to build workbook: %v", err)
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("leads-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	if err := file.Write(w); err != nil {
		log.Printf("[Export] failed to write workbook: %v", err)
	}
}

var exportHeaders = []string{
	"Handle", "Display Name", "Score", "Analysis Type",
	"Followers", "Following", "Posts", "Verified", "Business",
}

// buildLeadWorkbook renders one row per lead on a single sheet.
func buildLeadWorkbook(leads []*models.Lead) (*excelize.File, error) {
	file := excelize.NewFile()
	const sheet = "Leads"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, lead := range leads {
		values := []interface{}{
			lead.Handle, lead.DisplayName, lead.Score, string(lead.AnalysisType),
			lead.FollowerCount, lead.FollowingCount, lead.PostCount,
			lead.IsVerified, lead.IsBusiness,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
