package fragments

import (
	"html/template"

	"leadscope/models"
	"leadscope/ui/compose"
)

type summaryView struct {
	Body template.HTML
}

// analysisSummary renders the run's free-text summary, written by the
// analysis pipeline in markdown.
func analysisSummary() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameAnalysisSummary,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.Summary != ""
		},
		RenderFunc: func(_ *models.Lead, p models.Payload) (template.HTML, error) {
			return renderTemplate("analysis_summary.html", summaryView{
				Body: renderMarkdown(p.Summary),
			})
		},
	}
}
