package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscope/domain/core"
	"leadscope/models"
	"leadscope/ui/compose"
	"leadscope/ui/fragments"
)

// TestStoreKnownTypes tests that every analysis type has a structurally
// valid layout.
func TestStoreKnownTypes(t *testing.T) {
	store := NewStaticStore()

	for _, at := range []models.AnalysisType{models.AnalysisLight, models.AnalysisDeep, models.AnalysisXray} {
		cfg, err := store.GetLayoutConfig(at)
		require.NoError(t, err, "layout for %s", at)
		assert.NoError(t, cfg.Validate(), "layout for %s", at)
		assert.NotEmpty(t, cfg.ComponentNames(), "layout for %s", at)
	}
}

// TestStoreShape tests the documented layout shapes: light is flat, deep
// and xray are tabbed, xray adds the intelligence tab.
func TestStoreShape(t *testing.T) {
	store := NewStaticStore()

	light, err := store.GetLayoutConfig(models.AnalysisLight)
	require.NoError(t, err)
	assert.False(t, light.HasTabs)

	deep, err := store.GetLayoutConfig(models.AnalysisDeep)
	require.NoError(t, err)
	require.True(t, deep.HasTabs)
	assert.Len(t, deep.Tabs, 3)

	xray, err := store.GetLayoutConfig(models.AnalysisXray)
	require.NoError(t, err)
	require.True(t, xray.HasTabs)
	assert.Len(t, xray.Tabs, 4)
	assert.Equal(t, "intelligence", xray.Tabs[3].ID)
}

// TestStoreUnknownType tests that a missing config is an error, not a
// silent default.
func TestStoreUnknownType(t *testing.T) {
	store := NewStaticStore()
	_, err := store.GetLayoutConfig(models.AnalysisType("forensic"))
	require.Error(t, err)
	assert.True(t, core.IsLayoutError(err))
}

// TestStoreComponentsAllRegistered guards against drift between layout
// configs and the fragment set: every configured name must resolve once the
// built-in fragments register.
func TestStoreComponentsAllRegistered(t *testing.T) {
	r := compose.NewRegistryWithQueue(nil)
	fragments.RegisterAll(r)

	store := NewStaticStore()
	for _, at := range []models.AnalysisType{models.AnalysisLight, models.AnalysisDeep, models.AnalysisXray} {
		cfg, err := store.GetLayoutConfig(at)
		require.NoError(t, err)
		for _, name := range cfg.ComponentNames() {
			_, ok := r.Get(name)
			assert.True(t, ok, "layout %s references unregistered fragment %q", at, name)
		}
	}
}
