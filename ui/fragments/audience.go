package fragments

import (
	"html/template"
	"math"

	"gonum.org/v1/gonum/stat"

	"leadscope/models"
	"leadscope/ui/compose"
)

type audienceView struct {
	Buckets      []models.AgeBucket
	HasAgeMean   bool
	WeightedAge  float64
	FemaleShare  float64
	MaleShare    float64
	// GenderBalance is the normalized entropy of the gender split: 1 for
	// an even audience, toward 0 as one gender dominates.
	HasGenderBalance bool
	GenderBalance    float64
	TopLocations     []string
}

// audienceInsights renders the follower demographics: the age distribution
// with its share-weighted mean, the gender split, and top locations.
func audienceInsights() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameAudienceInsights,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.Audience != nil
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			a := p.Audience
			view := audienceView{
				Buckets:      a.AgeBuckets,
				FemaleShare:  a.FemaleShare,
				MaleShare:    a.MaleShare,
				TopLocations: a.TopLocations,
			}
			if mean, ok := weightedAgeMean(a.AgeBuckets); ok {
				view.HasAgeMean = true
				view.WeightedAge = mean
			}
			if balance, ok := genderBalance(a.FemaleShare, a.MaleShare); ok {
				view.HasGenderBalance = true
				view.GenderBalance = balance
			}
			return renderTemplate("audience.html", view)
		},
	}
}

// weightedAgeMean computes the share-weighted mean of the bucket midpoints.
// Buckets with zero total share give no meaningful mean.
func weightedAgeMean(buckets []models.AgeBucket) (float64, bool) {
	if len(buckets) == 0 {
		return 0, false
	}
	midpoints := make([]float64, len(buckets))
	shares := make([]float64, len(buckets))
	total := 0.0
	for i, b := range buckets {
		midpoints[i] = b.Midpoint
		shares[i] = b.Share
		total += b.Share
	}
	if total <= 0 {
		return 0, false
	}
	return stat.Mean(midpoints, shares), true
}

// genderBalance normalizes the female/male shares to a distribution and
// returns its entropy scaled to [0,1]. Shares that do not sum to a positive
// value give no balance figure.
func genderBalance(female, male float64) (float64, bool) {
	total := female + male
	if female < 0 || male < 0 || total <= 0 {
		return 0, false
	}
	dist := []float64{female / total, male / total}
	return stat.Entropy(dist) / math.Ln2, true
}
