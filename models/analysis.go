package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is a single analysis run for a lead, as stored. Older rows
// predate the current schema, so the payload may live in one of several
// places: a payloads collection, a deep_payload column, an xray_payload
// column, or inline on the record body itself. The resolver in
// domain/payload decides which one wins.
//
// When a lead has multiple runs, the most recently created one is
// authoritative; the repository only ever returns that run.
type AnalysisRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	LeadID    uuid.UUID `db:"lead_id" json:"lead_id"`
	Score     float64   `db:"score" json:"score"`
	Summary   string    `db:"summary" json:"summary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Legacy storage shapes, in resolution order. Each is raw JSON as read
	// from the row; empty or null means the shape is absent.
	Payloads    json.RawMessage `db:"payloads" json:"payloads,omitempty"`
	DeepPayload json.RawMessage `db:"deep_payload" json:"deep_payload,omitempty"`
	XrayPayload json.RawMessage `db:"xray_payload" json:"xray_payload,omitempty"`
	Body        json.RawMessage `db:"body" json:"body,omitempty"`
}

// Payload is the canonical, fully-typed analysis detail object. Every
// section is optional: nil means the run never produced it, and fragment
// predicates must treat nil as "nothing to show".
type Payload struct {
	Summary                string                  `json:"summary,omitempty"`
	Engagement             *EngagementBreakdown    `json:"engagement_breakdown,omitempty"`
	Audience               *AudienceInsights       `json:"audience_insights,omitempty"`
	SellingPoints          []string                `json:"selling_points,omitempty"`
	Outreach               *Outreach               `json:"outreach,omitempty"`
	CopywriterProfile      *CopywriterProfile      `json:"copywriter_profile,omitempty"`
	CommercialIntelligence *CommercialIntelligence `json:"commercial_intelligence,omitempty"`
	PersuasionProfile      *PersuasionProfile      `json:"persuasion_profile,omitempty"`
}

// IsEmpty reports whether no section resolved at all.
func (p Payload) IsEmpty() bool {
	return p.Summary == "" &&
		p.Engagement == nil &&
		p.Audience == nil &&
		len(p.SellingPoints) == 0 &&
		p.Outreach == nil &&
		p.CopywriterProfile == nil &&
		p.CommercialIntelligence == nil &&
		p.PersuasionProfile == nil
}

// EngagementBreakdown carries the per-post interaction data produced by
// deep and xray runs.
type EngagementBreakdown struct {
	Rate        float64   `json:"rate"`
	PostSamples []float64 `json:"post_samples,omitempty"`
	AvgLikes    float64   `json:"avg_likes"`
	AvgComments float64   `json:"avg_comments"`
}

// AudienceInsights describes who follows the lead.
type AudienceInsights struct {
	AgeBuckets   []AgeBucket `json:"age_buckets,omitempty"`
	FemaleShare  float64     `json:"female_share"`
	MaleShare    float64     `json:"male_share"`
	TopLocations []string    `json:"top_locations,omitempty"`
}

// AgeBucket is one slice of the audience age distribution.
type AgeBucket struct {
	Label    string  `json:"label"`
	Midpoint float64 `json:"midpoint"`
	Share    float64 `json:"share"`
}

// Outreach is the generated first-contact copy.
type Outreach struct {
	Message string   `json:"message"`
	Hooks   []string `json:"hooks,omitempty"`
}

// CopywriterProfile is an xray-only block describing the lead's writing voice.
type CopywriterProfile struct {
	Tone       string   `json:"tone"`
	Vocabulary string   `json:"vocabulary"`
	Themes     []string `json:"themes,omitempty"`
}

// CommercialIntelligence is an xray-only block on monetization signals.
type CommercialIntelligence struct {
	SellsProducts  bool     `json:"sells_products"`
	PriceBand      string   `json:"price_band"`
	BrandPartners  []string `json:"brand_partners,omitempty"`
	RevenueSignals []string `json:"revenue_signals,omitempty"`
}

// PersuasionProfile is an xray-only block on what arguments land with the lead.
type PersuasionProfile struct {
	PrimaryDriver string   `json:"primary_driver"`
	Objections    []string `json:"objections,omitempty"`
	Angles        []string `json:"angles,omitempty"`
}
