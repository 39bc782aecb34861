// Package tier maps a lead's 0-100 score to a visual tier: a label plus
// a gradient used for the score ring and card accents. The mapping is a
// fixed five-band lookup with a small number of discrete gradient variants
// inside each band, so near scores render with visibly near colors while
// band boundaries stay crisp.
package tier

// Descriptor is the visual classification for one score. It is recomputed
// per render and never stored.
type Descriptor struct {
	Label         string
	GradientStops []string
	Band          int
}

// HighTier reports whether the descriptor belongs to the top score band.
// The build-complete notice carries this bit for analytics.
func (d Descriptor) HighTier() bool {
	return d.Band == topBand
}

const topBand = 4

// Band floors. Lower bounds are closed: a score exactly on a boundary
// belongs to the higher band.
var bandFloors = [5]float64{0, 31, 51, 66, 81}

var bandWidths = [4]float64{31, 20, 15, 15}

var bandLabels = [5]string{"Critical", "Developing", "Promising", "Strong", "Elite"}

// Blend cut-points per band. These are hand-tuned lookup data: bands with
// three gradient variants cut at 0.3/0.6, bands with four cut at
// 0.25/0.5/0.75. Reproduce, do not re-derive.
var bandCuts = [4][]float64{
	{0.3, 0.6},
	{0.25, 0.5, 0.75},
	{0.3, 0.6},
	{0.25, 0.5, 0.75},
}

// Gradient variants per band, ordered low to high blend. Together they walk
// a red -> orange -> yellow -> teal -> blue -> purple progression.
var bandGradients = [4][][]string{
	{
		{"#7f1d1d", "#dc2626"},
		{"#b91c1c", "#ef4444"},
		{"#dc2626", "#f97316"},
	},
	{
		{"#ea580c", "#f97316"},
		{"#f97316", "#fb923c"},
		{"#f59e0b", "#fbbf24"},
		{"#fbbf24", "#facc15"},
	},
	{
		{"#facc15", "#a3e635"},
		{"#a3e635", "#4ade80"},
		{"#4ade80", "#2dd4bf"},
	},
	{
		{"#2dd4bf", "#22d3ee"},
		{"#22d3ee", "#38bdf8"},
		{"#38bdf8", "#60a5fa"},
		{"#60a5fa", "#3b82f6"},
	},
}

var eliteGradient = []string{"#3b82f6", "#8b5cf6"}

// Classify maps a score in [0,100] to its tier descriptor. The function is
// pure and total over the full range; out-of-range scores are not validated
// here, callers clamp upstream (models.Lead.ClampedScore).
func Classify(score float64) Descriptor {
	band := bandFor(score)
	if band == topBand {
		return Descriptor{Label: bandLabels[topBand], GradientStops: eliteGradient, Band: topBand}
	}

	blend := (score - bandFloors[band]) / bandWidths[band]
	variant := quantize(blend, bandCuts[band])
	return Descriptor{
		Label:         bandLabels[band],
		GradientStops: bandGradients[band][variant],
		Band:          band,
	}
}

func bandFor(score float64) int {
	switch {
	case score < 31:
		return 0
	case score < 51:
		return 1
	case score < 66:
		return 2
	case score < 81:
		return 3
	default:
		return topBand
	}
}

// quantize selects a gradient variant index from the blend factor using the
// band's fixed cut-points. Blend factors below the first cut (including
// negatives from unclamped input) select variant 0.
func quantize(blend float64, cuts []float64) int {
	for i, cut := range cuts {
		if blend < cut {
			return i
		}
	}
	return len(cuts)
}
