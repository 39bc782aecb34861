package fragments

import (
	"html/template"

	"leadscope/domain/tier"
	"leadscope/models"
	"leadscope/ui/compose"
)

// profileHeader shows the lead's identity row: avatar, handle, badges, and
// follower counts. No predicate: every layout leads with it.
func profileHeader() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameProfileHeader,
		RenderFunc: func(lead *models.Lead, _ models.Payload) (template.HTML, error) {
			return renderTemplate("profile_header.html", lead)
		},
	}
}

type scoreRingView struct {
	Score    float64
	Tier     tier.Descriptor
	FromStop string
	ToStop   string
}

// scoreRing renders the animated score ring with the tier gradient. The
// count-up starts client-side once the modal's deferred reveal fires.
func scoreRing() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameScoreRing,
		RenderFunc: func(lead *models.Lead, _ models.Payload) (template.HTML, error) {
			d := tier.Classify(lead.ClampedScore())
			return renderTemplate("score_ring.html", scoreRingView{
				Score:    lead.ClampedScore(),
				Tier:     d,
				FromStop: d.GradientStops[0],
				ToStop:   d.GradientStops[1],
			})
		},
	}
}

// lightNotice explains that a light run carries only a top-line score. It
// must tolerate a completely missing payload: light leads often have no
// stored analysis run at all.
func lightNotice() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameLightNotice,
		RenderFunc: func(lead *models.Lead, _ models.Payload) (template.HTML, error) {
			return renderTemplate("light_notice.html", lead)
		},
	}
}
