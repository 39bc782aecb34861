package fragments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscope/models"
	"leadscope/ui/compose"
)

func sampleLead() *models.Lead {
	return &models.Lead{
		Handle:         "wanderlust.maps",
		DisplayName:    "Wanderlust Maps",
		AnalysisType:   models.AnalysisDeep,
		Score:          77,
		FollowerCount:  125_400,
		FollowingCount: 820,
		PostCount:      431,
		IsVerified:     true,
	}
}

// TestRegisterAllCoversEveryName tests that every declared fragment name is
// registered by RegisterAll.
func TestRegisterAllCoversEveryName(t *testing.T) {
	r := compose.NewRegistryWithQueue(nil)
	RegisterAll(r)

	names := []string{
		NameProfileHeader, NameScoreRing, NameLightNotice, NameAnalysisSummary,
		NameEngagementBreakdown, NameAudienceInsights, NameSellingPoints,
		NameOutreachMessage, NameCopywriterProfile, NameCommercialIntelligence,
		NamePersuasionProfile,
	}
	assert.Equal(t, len(names), r.Len())
	for _, name := range names {
		_, ok := r.Get(name)
		assert.True(t, ok, "missing fragment %q", name)
	}
}

// TestPredicatesFailClosed tests that every payload-gated fragment treats an
// empty payload as "nothing to show" without panicking.
func TestPredicatesFailClosed(t *testing.T) {
	r := compose.NewRegistryWithQueue(nil)
	RegisterAll(r)

	gated := []string{
		NameAnalysisSummary, NameEngagementBreakdown, NameAudienceInsights,
		NameSellingPoints, NameOutreachMessage, NameCopywriterProfile,
		NameCommercialIntelligence, NamePersuasionProfile,
	}
	for _, name := range gated {
		f, ok := r.Get(name)
		require.True(t, ok)
		assert.False(t, f.Eligible(sampleLead(), models.Payload{}), "%s must fail closed on empty payload", name)
	}

	for _, name := range []string{NameProfileHeader, NameScoreRing, NameLightNotice} {
		f, ok := r.Get(name)
		require.True(t, ok)
		assert.True(t, f.Eligible(sampleLead(), models.Payload{}), "%s has no predicate", name)
	}
}

// TestProfileHeaderRender tests identity, badges, and compact counts.
func TestProfileHeaderRender(t *testing.T) {
	html, err := profileHeader().Render(sampleLead(), models.Payload{})
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "@wanderlust.maps")
	assert.Contains(t, s, "Wanderlust Maps")
	assert.Contains(t, s, "badge-verified")
	assert.Contains(t, s, "125.4K")
}

// TestScoreRingRender tests that the ring carries the tier label and
// gradient stops for the lead's score band.
func TestScoreRingRender(t *testing.T) {
	html, err := scoreRing().Render(sampleLead(), models.Payload{})
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, `data-score="77"`)
	assert.Contains(t, s, "Strong")
	assert.Contains(t, s, `data-count-up="77"`)
	assert.Contains(t, s, "stop-color")
}

// TestEngagementRenderWithSamples tests the distribution stats block.
func TestEngagementRenderWithSamples(t *testing.T) {
	p := models.Payload{Engagement: &models.EngagementBreakdown{
		Rate:        4.2,
		PostSamples: []float64{100, 200, 300, 400},
		AvgLikes:    240,
		AvgComments: 12,
	}}

	html, err := engagementBreakdown().Render(sampleLead(), p)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "4.2%")
	// Mean and median of the samples are both 250.
	assert.Equal(t, 2, strings.Count(s, ">250<"), "mean and median cells")
	assert.Contains(t, s, "P90")
}

// TestEngagementRenderWithoutSamples tests degradation to aggregates only.
func TestEngagementRenderWithoutSamples(t *testing.T) {
	p := models.Payload{Engagement: &models.EngagementBreakdown{
		Rate: 2.0, AvgLikes: 80, AvgComments: 4,
	}}

	html, err := engagementBreakdown().Render(sampleLead(), p)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "P90")
}

// TestAudienceWeightedAgeMean tests the share-weighted mean of bucket
// midpoints.
func TestAudienceWeightedAgeMean(t *testing.T) {
	buckets := []models.AgeBucket{
		{Label: "18-24", Midpoint: 21, Share: 0.5},
		{Label: "25-34", Midpoint: 29.5, Share: 0.5},
	}
	mean, ok := weightedAgeMean(buckets)
	require.True(t, ok)
	assert.InDelta(t, 25.25, mean, 1e-9)

	_, ok = weightedAgeMean(nil)
	assert.False(t, ok)
	_, ok = weightedAgeMean([]models.AgeBucket{{Midpoint: 21, Share: 0}})
	assert.False(t, ok)
}

// TestGenderBalance tests the normalized entropy of the gender split.
func TestGenderBalance(t *testing.T) {
	even, ok := genderBalance(0.5, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 1.0, even, 1e-9)

	skewed, ok := genderBalance(0.9, 0.1)
	require.True(t, ok)
	assert.Less(t, skewed, 0.5)

	onesided, ok := genderBalance(1, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.0, onesided, 1e-9)

	_, ok = genderBalance(0, 0)
	assert.False(t, ok)
}

// TestOutreachMarkdownRender tests markdown conversion of the message body.
func TestOutreachMarkdownRender(t *testing.T) {
	p := models.Payload{Outreach: &models.Outreach{
		Message: "Loved your **last reel**.",
		Hooks:   []string{"recent post"},
	}}

	html, err := outreachMessage().Render(sampleLead(), p)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "<strong>last reel</strong>")
	assert.Contains(t, s, "recent post")
}

// TestSummaryMarkdownRender tests the summary fragment.
func TestSummaryMarkdownRender(t *testing.T) {
	p := models.Payload{Summary: "Posts *daily*."}
	html, err := analysisSummary().Render(sampleLead(), p)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<em>daily</em>")
}

// TestXrayFragmentsRender tests the three xray-only blocks.
func TestXrayFragmentsRender(t *testing.T) {
	p := models.Payload{
		CopywriterProfile:      &models.CopywriterProfile{Tone: "warm", Vocabulary: "casual"},
		CommercialIntelligence: &models.CommercialIntelligence{SellsProducts: true, PriceBand: "mid"},
		PersuasionProfile:      &models.PersuasionProfile{PrimaryDriver: "status"},
	}

	html, err := copywriterProfile().Render(sampleLead(), p)
	require.NoError(t, err)
	assert.Contains(t, string(html), "warm")

	html, err = commercialIntelligence().Render(sampleLead(), p)
	require.NoError(t, err)
	assert.Contains(t, string(html), "mid")

	html, err = persuasionProfile().Render(sampleLead(), p)
	require.NoError(t, err)
	assert.Contains(t, string(html), "status")
}
