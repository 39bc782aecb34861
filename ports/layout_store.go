package ports

import (
	"leadscope/domain/layout"
	"leadscope/models"
)

// LayoutStore resolves the modal layout for an analysis type. A missing
// config is an error: the builder surfaces it to the caller rather than
// silently defaulting.
type LayoutStore interface {
	GetLayoutConfig(analysisType models.AnalysisType) (layout.Config, error)
}
