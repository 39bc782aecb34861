// Package fragments provides the concrete modal fragments for each analysis
// type. The package registers its fragment set through the compose extension
// queue from init, so it merges into whichever registry the container builds
// regardless of import order.
package fragments

// Fragment names referenced by layout configs.
const (
	NameProfileHeader          = "profile_header"
	NameScoreRing              = "score_ring"
	NameLightNotice            = "light_notice"
	NameAnalysisSummary        = "analysis_summary"
	NameEngagementBreakdown    = "engagement_breakdown"
	NameAudienceInsights       = "audience_insights"
	NameSellingPoints          = "selling_points"
	NameOutreachMessage        = "outreach_message"
	NameCopywriterProfile      = "copywriter_profile"
	NameCommercialIntelligence = "commercial_intelligence"
	NamePersuasionProfile      = "persuasion_profile"
)
