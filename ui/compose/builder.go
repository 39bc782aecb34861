package compose

import (
	"fmt"
	"html/template"
	"strings"

	"leadscope/domain/layout"
	"leadscope/domain/payload"
	"leadscope/domain/tier"
	"leadscope/internal"
	"leadscope/internal/errors"
	"leadscope/models"
	"leadscope/ports"
)

// Builder assembles the analysis-detail modal for a lead: resolve the
// payload, look up the layout for the lead's analysis type, render each
// configured fragment through the registry, group into tabs if the layout
// says so, wrap, and notify observers.
//
// Failure policy: a missing layout config is the caller's error. A missing
// fragment name, a false predicate, or a failing render each drop only that
// fragment; a single bad fragment never fails the whole modal.
type Builder struct {
	registry  *Registry
	layouts   ports.LayoutStore
	observers []ports.BuildObserver
	logger    *internal.Logger
}

// NewBuilder wires a builder from its collaborators. Observers are optional.
func NewBuilder(registry *Registry, layouts ports.LayoutStore, observers ...ports.BuildObserver) *Builder {
	return &Builder{
		registry:  registry,
		layouts:   layouts,
		observers: observers,
		logger:    internal.NewDefaultLogger(),
	}
}

// AddObserver attaches another build-complete observer.
func (b *Builder) AddObserver(obs ports.BuildObserver) {
	if obs != nil {
		b.observers = append(b.observers, obs)
	}
}

// Build renders the full modal markup for a lead and its latest analysis
// run. The record may be nil. Builds are idempotent and re-entrant; each
// call is an independent instance.
func (b *Builder) Build(lead *models.Lead, rec *models.AnalysisRecord) (template.HTML, error) {
	if lead == nil {
		return "", errors.InvalidInput("lead is required")
	}

	p := payload.Resolve(lead, rec)

	cfg, err := b.layouts.GetLayoutConfig(lead.AnalysisType)
	if err != nil {
		return "", errors.WithCode(errors.CodeConfigInvalid,
			errors.Wrapf(err, "no modal layout for analysis type %q", lead.AnalysisType))
	}

	var body template.HTML
	if cfg.HasTabs {
		body = b.buildTabbed(lead, p, cfg)
	} else {
		body = b.buildFlat(lead, p, cfg.Components)
	}

	descriptor := tier.Classify(lead.ClampedScore())
	markup := wrapModal(lead, descriptor, body)

	b.notify(ports.BuildNotice{
		AnalysisType:    lead.AnalysisType,
		LeadHandle:      lead.Handle,
		IsHighTierScore: descriptor.HighTier(),
	})

	return markup, nil
}

// buildFlat renders the configured fragments in order and concatenates
// whatever survives.
func (b *Builder) buildFlat(lead *models.Lead, p models.Payload, components []string) template.HTML {
	var sb strings.Builder
	for _, html := range b.renderComponents(lead, p, components) {
		sb.WriteString(string(html))
	}
	return template.HTML(sb.String())
}

// buildTabbed renders every tab's fragments up front and hands the panes to
// the tab composer; tab switching later only toggles visibility.
func (b *Builder) buildTabbed(lead *models.Lead, p models.Payload, cfg layout.Config) template.HTML {
	panes := make([]TabPane, 0, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		var sb strings.Builder
		for _, html := range b.renderComponents(lead, p, tab.Components) {
			sb.WriteString(string(html))
		}
		panes = append(panes, TabPane{
			ID:      tab.ID,
			Label:   tab.Label,
			Content: template.HTML(sb.String()),
		})
	}
	return NewTabComposer(panes).Render()
}

// renderComponents resolves each configured name against the registry and
// renders the eligible fragments, preserving configured order.
func (b *Builder) renderComponents(lead *models.Lead, p models.Payload, components []string) []template.HTML {
	rendered := make([]template.HTML, 0, len(components))
	for _, name := range components {
		fragment, ok := b.registry.Get(name)
		if !ok {
			b.logger.Warn("fragment %q not registered, skipping (lead %s)", name, lead.Handle)
			continue
		}
		if !fragment.Eligible(lead, p) {
			continue
		}
		html, err := safeRender(fragment, lead, p)
		if err != nil {
			b.logger.Warn("fragment %q render failed, dropped (lead %s): %v", name, lead.Handle, err)
			continue
		}
		rendered = append(rendered, html)
	}
	return rendered
}

// safeRender invokes a fragment's Render, converting panics into errors so
// one misbehaving fragment cannot take down the build.
func safeRender(f Fragment, lead *models.Lead, p models.Payload) (html template.HTML, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fragment panicked: %v", r)
		}
	}()
	return f.Render(lead, p)
}

// wrapModal wraps the assembled body in the modal container. The container
// carries the tier gradient stops as data attributes for the score ring and
// a reveal hook the client uses to start entrance animations after layout.
func wrapModal(lead *models.Lead, d tier.Descriptor, body template.HTML) template.HTML {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<div class="analysis-modal" data-analysis-type="%s" data-lead-handle="%s" data-tier="%s" data-gradient-from="%s" data-gradient-to="%s" data-reveal="deferred">`,
		template.HTMLEscapeString(string(lead.AnalysisType)),
		template.HTMLEscapeString(lead.Handle),
		template.HTMLEscapeString(d.Label),
		template.HTMLEscapeString(d.GradientStops[0]),
		template.HTMLEscapeString(d.GradientStops[1]))
	sb.WriteString(string(body))
	sb.WriteString(`</div>`)
	return template.HTML(sb.String())
}

func (b *Builder) notify(notice ports.BuildNotice) {
	for _, obs := range b.observers {
		obs.BuildCompleted(notice)
	}
}
