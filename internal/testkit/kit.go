// Package testkit generates deterministic demo leads so the dashboard runs
// without a database (DEV_MODE) and engine tests have realistic rows. The
// generated analysis runs deliberately cover every legacy storage shape the
// payload resolver knows.
package testkit

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"leadscope/domain/core"
	"leadscope/models"
	"leadscope/ports"
)

const demoSeed = 1847

// TestKit holds the generated demo dataset.
type TestKit struct {
	leads   []*models.Lead
	records map[uuid.UUID]*models.AnalysisRecord
}

// NewTestKit generates the demo dataset. Generation is seeded, so handles,
// scores, and payloads are identical across runs.
func NewTestKit() (*TestKit, error) {
	rng := rand.New(rand.NewSource(demoSeed))

	kit := &TestKit{records: make(map[uuid.UUID]*models.AnalysisRecord)}
	specs := []struct {
		handle       string
		analysisType models.AnalysisType
		score        float64
		shape        string
	}{
		{"urban.roast.club", models.AnalysisXray, 92, "payloads"},
		{"thefitforge", models.AnalysisXray, 84, "xray_payload"},
		{"wanderlust.maps", models.AnalysisDeep, 77, "payloads"},
		{"plantsofparade", models.AnalysisDeep, 68, "deep_payload"},
		{"mindful.marta", models.AnalysisDeep, 55, "body"},
		{"gearheadgarage", models.AnalysisDeep, 43, "deep_payload"},
		{"sketchdailyco", models.AnalysisLight, 61, "none"},
		{"bakes.by.bri", models.AnalysisLight, 37, "none"},
		{"localsound.live", models.AnalysisLight, 22, "none"},
	}

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, spec := range specs {
		lead := generateLead(rng, spec.handle, spec.analysisType, spec.score, base.Add(time.Duration(i)*time.Hour))
		kit.leads = append(kit.leads, lead)

		if spec.shape == "none" {
			continue
		}
		rec, err := generateRecord(rng, lead, spec.shape)
		if err != nil {
			return nil, fmt.Errorf("failed to generate demo run for %s: %w", spec.handle, err)
		}
		kit.records[lead.ID] = rec
	}

	return kit, nil
}

// Leads returns the demo leads ordered by score descending.
func (k *TestKit) Leads() []*models.Lead {
	out := make([]*models.Lead, len(k.leads))
	copy(out, k.leads)
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// LeadRepository returns an in-memory repository over the demo dataset.
func (k *TestKit) LeadRepository() ports.LeadRepository {
	return &memoryRepository{kit: k}
}

func generateLead(rng *rand.Rand, handle string, t models.AnalysisType, score float64, created time.Time) *models.Lead {
	followers := int64(2_000 + rng.Intn(900_000))
	return &models.Lead{
		ID:             deterministicID(handle),
		Handle:         handle,
		DisplayName:    displayNameFor(handle),
		AvatarURL:      fmt.Sprintf("/static/avatars/%s.png", handle),
		IsVerified:     rng.Intn(4) == 0,
		IsBusiness:     rng.Intn(2) == 0,
		IsPrivate:      false,
		FollowerCount:  followers,
		FollowingCount: int64(100 + rng.Intn(2_000)),
		PostCount:      int64(30 + rng.Intn(1_500)),
		ExternalURL:    fmt.Sprintf("https://%s.example.com", handle),
		AnalysisType:   t,
		Score:          score,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func generateRecord(rng *rand.Rand, lead *models.Lead, shape string) (*models.AnalysisRecord, error) {
	detail := demoPayload(rng, lead)
	raw, err := json.Marshal(detail)
	if err != nil {
		return nil, err
	}

	rec := &models.AnalysisRecord{
		ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte("leadscope/demo-run/"+lead.Handle)),
		LeadID:    lead.ID,
		Score:     lead.Score,
		Summary:   "Demo analysis run",
		CreatedAt: lead.CreatedAt.Add(30 * time.Minute),
	}

	switch shape {
	case "payloads":
		wrapped, err := json.Marshal([]map[string]json.RawMessage{{"analysis_data": raw}})
		if err != nil {
			return nil, err
		}
		rec.Payloads = wrapped
	case "deep_payload":
		rec.DeepPayload = raw
	case "xray_payload":
		rec.XrayPayload = raw
	case "body":
		rec.Body = raw
	default:
		return nil, fmt.Errorf("unknown demo storage shape %q", shape)
	}
	return rec, nil
}

func demoPayload(rng *rand.Rand, lead *models.Lead) models.Payload {
	samples := make([]float64, 12)
	baseline := 50 + rng.Float64()*400
	for i := range samples {
		samples[i] = baseline * (0.5 + rng.Float64())
	}

	p := models.Payload{
		Summary: fmt.Sprintf("**@%s** posts consistently and replies to comments within hours. "+
			"Engagement skews toward carousel posts.", lead.Handle),
		Engagement: &models.EngagementBreakdown{
			Rate:        1.5 + rng.Float64()*6,
			PostSamples: samples,
			AvgLikes:    baseline,
			AvgComments: baseline / 20,
		},
		Audience: &models.AudienceInsights{
			AgeBuckets: []models.AgeBucket{
				{Label: "18-24", Midpoint: 21, Share: 0.2 + rng.Float64()*0.2},
				{Label: "25-34", Midpoint: 29.5, Share: 0.3 + rng.Float64()*0.2},
				{Label: "35-44", Midpoint: 39.5, Share: 0.1 + rng.Float64()*0.15},
				{Label: "45+", Midpoint: 52, Share: 0.05 + rng.Float64()*0.1},
			},
			FemaleShare:  0.4 + rng.Float64()*0.3,
			MaleShare:    0.3 + rng.Float64()*0.3,
			TopLocations: []string{"Austin", "Portland", "Denver"},
		},
		SellingPoints: []string{
			"High comment-to-like ratio",
			"Audience overlaps the target demographic",
			"No current brand partnerships in this category",
		},
		Outreach: &models.Outreach{
			Message: fmt.Sprintf("Hey @%s - your last series stopped my scroll. "+
				"We work with creators in your space and I think there's a fit worth a minute of your time.", lead.Handle),
			Hooks: []string{"recent post", "audience fit"},
		},
	}

	if lead.AnalysisType == models.AnalysisXray {
		p.CopywriterProfile = &models.CopywriterProfile{
			Tone:       "warm, first-person",
			Vocabulary: "casual with niche jargon",
			Themes:     []string{"process transparency", "community callouts"},
		}
		p.CommercialIntelligence = &models.CommercialIntelligence{
			SellsProducts:  true,
			PriceBand:      "mid",
			BrandPartners:  []string{"local collaborations"},
			RevenueSignals: []string{"link-in-bio shop", "recurring promo cadence"},
		}
		p.PersuasionProfile = &models.PersuasionProfile{
			PrimaryDriver: "creative control",
			Objections:    []string{"prior bad sponsorship experience"},
			Angles:        []string{"co-creation", "audience-first framing"},
		}
	}
	return p
}

// deterministicID derives a stable UUID from the handle so demo links stay
// valid across restarts.
func deterministicID(handle string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("leadscope/demo/"+handle))
}

func displayNameFor(handle string) string {
	runes := []rune(handle)
	out := make([]rune, 0, len(runes))
	upper := true
	for _, r := range runes {
		if r == '.' || r == '_' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper {
			if r >= 'a' && r <= 'z' {
				r = r - 'a' + 'A'
			}
			upper = false
		}
		out = append(out, r)
	}
	return string(out)
}

// memoryRepository serves the demo dataset through the LeadRepository port.
type memoryRepository struct {
	mu  sync.RWMutex
	kit *TestKit
}

func (r *memoryRepository) FetchLeadWithLatestRun(_ context.Context, leadID uuid.UUID) (*models.Lead, *models.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lead := range r.kit.leads {
		if lead.ID == leadID {
			return lead, r.kit.records[leadID], nil
		}
	}
	return nil, nil, core.NewNotFoundError("lead", leadID.String())
}

func (r *memoryRepository) ListLeads(_ context.Context) ([]*models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.kit.Leads(), nil
}
