// Package layouts is the static layout-configuration collaborator: it owns
// the per-analysis-type modal layouts and serves them read-only.
package layouts

import (
	"leadscope/domain/core"
	"leadscope/domain/layout"
	"leadscope/models"
	"leadscope/ports"
	"leadscope/ui/fragments"
)

// StaticStore serves the built-in layout configs.
type StaticStore struct {
	configs map[models.AnalysisType]layout.Config
}

// NewStaticStore builds the store with the light, deep, and xray layouts.
func NewStaticStore() ports.LayoutStore {
	return &StaticStore{configs: map[models.AnalysisType]layout.Config{
		models.AnalysisLight: {
			HasTabs: false,
			Components: []string{
				fragments.NameProfileHeader,
				fragments.NameScoreRing,
				fragments.NameLightNotice,
			},
		},
		models.AnalysisDeep: {
			HasTabs: true,
			Tabs:    deepTabs(),
		},
		models.AnalysisXray: {
			HasTabs: true,
			Tabs: append(deepTabs(), layout.Tab{
				ID:    "intelligence",
				Label: "Intelligence",
				Components: []string{
					fragments.NameCopywriterProfile,
					fragments.NameCommercialIntelligence,
					fragments.NamePersuasionProfile,
				},
			}),
		},
	}}
}

func deepTabs() []layout.Tab {
	return []layout.Tab{
		{
			ID:    "overview",
			Label: "Overview",
			Components: []string{
				fragments.NameProfileHeader,
				fragments.NameScoreRing,
				fragments.NameAnalysisSummary,
			},
		},
		{
			ID:    "engagement",
			Label: "Engagement",
			Components: []string{
				fragments.NameEngagementBreakdown,
				fragments.NameAudienceInsights,
			},
		},
		{
			ID:    "outreach",
			Label: "Outreach",
			Components: []string{
				fragments.NameSellingPoints,
				fragments.NameOutreachMessage,
			},
		},
	}
}

// GetLayoutConfig returns the layout for an analysis type. Unknown types are
// a configuration error surfaced to the caller, never silently defaulted.
func (s *StaticStore) GetLayoutConfig(analysisType models.AnalysisType) (layout.Config, error) {
	cfg, ok := s.configs[analysisType]
	if !ok {
		return layout.Config{}, core.NewLayoutError(string(analysisType))
	}
	return cfg, nil
}
