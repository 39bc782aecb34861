package compose

import (
	"fmt"
	"html/template"
	"strings"
)

// TabPane is one tab's control metadata plus its fully-rendered content.
// Panes are rendered once at build time; selecting a tab only toggles
// visibility, never re-renders.
type TabPane struct {
	ID      string
	Label   string
	Content template.HTML
}

// TabComposer is the per-modal tab state machine. States are the declared
// tab ids; the initial state is the first declared tab. Exactly one tab is
// visible at any time. The machine lives for the modal's lifetime and is
// discarded when the modal closes; there is no terminal state.
type TabComposer struct {
	panes    []TabPane
	activeID string
}

// NewTabComposer builds a composer over the given panes. The first pane is
// active. An empty pane list yields a composer that renders nothing.
func NewTabComposer(panes []TabPane) *TabComposer {
	c := &TabComposer{panes: panes}
	if len(panes) > 0 {
		c.activeID = panes[0].ID
	}
	return c
}

// Select transitions the active tab. Selecting an id not in the tab list is
// an invalid transition: the prior active tab stays unchanged and Select
// returns false.
func (c *TabComposer) Select(id string) bool {
	for _, pane := range c.panes {
		if pane.ID == id {
			c.activeID = id
			return true
		}
	}
	return false
}

// ActiveTab returns the id of the single visible tab.
func (c *TabComposer) ActiveTab() string {
	return c.activeID
}

// Visible reports whether the given tab id is the active one.
func (c *TabComposer) Visible(id string) bool {
	return id == c.activeID
}

// TabIDs returns the declared tab ids in declaration order.
func (c *TabComposer) TabIDs() []string {
	ids := make([]string, len(c.panes))
	for i, pane := range c.panes {
		ids[i] = pane.ID
	}
	return ids
}

// Render emits the tab controls and all content panes. Controls carry
// role="tab" and aria-selected consistent with the active tab; inactive
// panes carry the hidden attribute so a client-side switch only flips
// visibility.
func (c *TabComposer) Render() template.HTML {
	if len(c.panes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="modal-tabs" role="tablist">`)
	for _, pane := range c.panes {
		selected := "false"
		class := "tab-control"
		if c.Visible(pane.ID) {
			selected = "true"
			class = "tab-control tab-control--active"
		}
		fmt.Fprintf(&sb,
			`<button type="button" role="tab" id="tab-%s" class="%s" aria-selected="%s" aria-controls="pane-%s" data-tab-id="%s">%s</button>`,
			template.HTMLEscapeString(pane.ID), class, selected,
			template.HTMLEscapeString(pane.ID),
			template.HTMLEscapeString(pane.ID),
			template.HTMLEscapeString(pane.Label))
	}
	sb.WriteString(`</div>`)

	for _, pane := range c.panes {
		hidden := " hidden"
		if c.Visible(pane.ID) {
			hidden = ""
		}
		fmt.Fprintf(&sb,
			`<div role="tabpanel" id="pane-%s" class="tab-pane" aria-labelledby="tab-%s"%s>`,
			template.HTMLEscapeString(pane.ID),
			template.HTMLEscapeString(pane.ID), hidden)
		sb.WriteString(string(pane.Content))
		sb.WriteString(`</div>`)
	}

	return template.HTML(sb.String())
}
