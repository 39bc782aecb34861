package fragments

import (
	"html/template"
	"log"

	"github.com/montanaflynn/stats"

	"leadscope/models"
	"leadscope/ui/compose"
)

type engagementView struct {
	Rate        float64
	AvgLikes    float64
	AvgComments float64

	HasSamples bool
	Mean       float64
	Median     float64
	StdDev     float64
	P90        float64
}

// engagementBreakdown summarizes per-post interaction. The distribution
// stats come from the raw post samples when the run stored them; otherwise
// only the pipeline's aggregates render.
func engagementBreakdown() compose.Fragment {
	return compose.FragmentFunc{
		FragmentName: NameEngagementBreakdown,
		Predicate: func(_ *models.Lead, p models.Payload) bool {
			return p.Engagement != nil
		},
		RenderFunc: func(lead *models.Lead, p models.Payload) (template.HTML, error) {
			eb := p.Engagement
			view := engagementView{
				Rate:        eb.Rate,
				AvgLikes:    eb.AvgLikes,
				AvgComments: eb.AvgComments,
			}
			if len(eb.PostSamples) > 0 {
				if err := fillSampleStats(&view, eb.PostSamples); err != nil {
					// Degrade to aggregates only; the fragment still renders.
					log.Printf("[Fragments] engagement sample stats failed for %s: %v", lead.Handle, err)
				}
			}
			return renderTemplate("engagement.html", view)
		},
	}
}

func fillSampleStats(view *engagementView, samples []float64) error {
	mean, err := stats.Mean(samples)
	if err != nil {
		return err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return err
	}
	stdDev, err := stats.StandardDeviation(samples)
	if err != nil {
		return err
	}
	p90, err := stats.Percentile(samples, 90)
	if err != nil {
		return err
	}

	view.HasSamples = true
	view.Mean = mean
	view.Median = median
	view.StdDev = stdDev
	view.P90 = p90
	return nil
}
