package fragments

import (
	"html/template"

	"leadscope/models"
	"leadscope/ui/compose"
)

// The three fragments below render xray-only payload blocks. Each predicate
// checks only its own section: an xray run missing one block still shows
// the others.

func copywriterProfile() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameCopywriterProfile,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.CopywriterProfile != nil
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			return renderTemplate("copywriter.html", p.CopywriterProfile)
		},
	}
}

func commercialIntelligence() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameCommercialIntelligence,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.CommercialIntelligence != nil
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			return renderTemplate("commercial.html", p.CommercialIntelligence)
		},
	}
}

func persuasionProfile() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NamePersuasionProfile,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.PersuasionProfile != nil
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			return renderTemplate("persuasion.html", p.PersuasionProfile)
		},
	}
}
