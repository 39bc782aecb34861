package compose_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscope/ui/compose"
)

func testPanes() []compose.TabPane {
	return []compose.TabPane{
		{ID: "overview", Label: "Overview", Content: "<p>overview body</p>"},
		{ID: "engagement", Label: "Engagement", Content: "<p>engagement body</p>"},
		{ID: "outreach", Label: "Outreach", Content: "<p>outreach body</p>"},
	}
}

// TestTabComposerInitialState tests that the first declared tab starts active.
func TestTabComposerInitialState(t *testing.T) {
	c := compose.NewTabComposer(testPanes())
	assert.Equal(t, "overview", c.ActiveTab())
	assert.True(t, c.Visible("overview"))
	assert.False(t, c.Visible("engagement"))
}

// TestTabComposerExactlyOneVisible tests the core invariant across a series
// of transitions: exactly one tab id is visible at all times.
func TestTabComposerExactlyOneVisible(t *testing.T) {
	c := compose.NewTabComposer(testPanes())

	sequence := []string{"engagement", "outreach", "overview", "outreach"}
	for _, id := range sequence {
		c.Select(id)
		visible := 0
		for _, tabID := range c.TabIDs() {
			if c.Visible(tabID) {
				visible++
			}
		}
		assert.Equal(t, 1, visible, "after selecting %s", id)
		assert.Equal(t, id, c.ActiveTab())
	}
}

// TestTabComposerInvalidSelection tests that selecting an undeclared tab id
// is a rejected transition leaving the prior active tab unchanged.
func TestTabComposerInvalidSelection(t *testing.T) {
	c := compose.NewTabComposer(testPanes())
	c.Select("engagement")

	ok := c.Select("nonexistent")
	assert.False(t, ok)
	assert.Equal(t, "engagement", c.ActiveTab())
}

// TestTabComposerRender tests the rendered markup: controls carry the
// accessibility roles and selected state, every pane is present, and only
// inactive panes are hidden.
func TestTabComposerRender(t *testing.T) {
	c := compose.NewTabComposer(testPanes())
	html := string(c.Render())

	assert.Contains(t, html, `role="tablist"`)
	assert.Contains(t, html, `role="tab"`)
	assert.Contains(t, html, `id="tab-overview"`)
	assert.Contains(t, html, `aria-selected="true"`)

	// All panes pre-rendered at build time.
	assert.Contains(t, html, "<p>overview body</p>")
	assert.Contains(t, html, "<p>engagement body</p>")
	assert.Contains(t, html, "<p>outreach body</p>")

	// Only the two inactive panes carry the hidden attribute.
	assert.Equal(t, 2, strings.Count(html, " hidden"))
	assert.NotContains(t, html, `id="pane-overview" class="tab-pane" aria-labelledby="tab-overview" hidden`)
}

// TestTabComposerEmpty tests that a composer over no panes renders nothing.
func TestTabComposerEmpty(t *testing.T) {
	c := compose.NewTabComposer(nil)
	assert.Empty(t, string(c.Render()))
	assert.Equal(t, "", c.ActiveTab())
}
