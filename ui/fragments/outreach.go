package fragments

import (
	"html/template"

	"leadscope/models"
	"leadscope/ui/compose"
)

type sellingPointsView struct {
	Points []string
}

// sellingPoints lists the pipeline's arguments for contacting this lead.
func sellingPoints() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameSellingPoints,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return len(p.SellingPoints) > 0
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			return renderTemplate("selling_points.html", sellingPointsView{
				Points: p.SellingPoints,
			})
		},
	}
}

type outreachView struct {
	Message template.HTML
	Hooks   []string
}

// outreachMessage renders the generated first-contact copy with its hooks.
func outreachMessage() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameOutreachMessage,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.Outreach != nil && p.Outreach.Message != ""
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			return renderTemplate("outreach.html", outreachView{
				Message: renderMarkdown(p.Outreach.Message),
				Hooks:   p.Outreach.Hooks,
			})
		},
	}
}
