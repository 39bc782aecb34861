// Package layout defines the per-analysis-type modal layout configuration:
// which fragments render and whether they are grouped into tabs. Configs are
// owned by a static store (adapters/layouts) and consumed read-only by the
// modal builder.
package layout

import "fmt"

// Tab is one named group of fragments inside a tabbed layout.
type Tab struct {
	ID         string
	Label      string
	Components []string
}

// Config describes the modal layout for one analysis type. Flat layouts
// list Components directly; tabbed layouts list Tabs, each with its own
// component order. Component order is render order.
type Config struct {
	HasTabs    bool
	Components []string
	Tabs       []Tab
}

// Validate checks structural consistency. A tabbed config must declare at
// least one tab; a flat config must not declare tabs.
func (c Config) Validate() error {
	if c.HasTabs {
		if len(c.Tabs) == 0 {
			return fmt.Errorf("tabbed layout declares no tabs")
		}
		seen := make(map[string]bool, len(c.Tabs))
		for _, tab := range c.Tabs {
			if tab.ID == "" {
				return fmt.Errorf("tab with empty id")
			}
			if seen[tab.ID] {
				return fmt.Errorf("duplicate tab id %q", tab.ID)
			}
			seen[tab.ID] = true
		}
		return nil
	}
	if len(c.Tabs) > 0 {
		return fmt.Errorf("flat layout declares tabs")
	}
	return nil
}

// ComponentNames returns every configured fragment name in render order,
// across tabs for tabbed layouts.
func (c Config) ComponentNames() []string {
	if !c.HasTabs {
		return c.Components
	}
	var names []string
	for _, tab := range c.Tabs {
		names = append(names, tab.Components...)
	}
	return names
}
