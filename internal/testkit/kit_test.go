package testkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscope/domain/payload"
	"leadscope/models"
)

// TestKitDeterministic tests that two kits generate identical leads.
func TestKitDeterministic(t *testing.T) {
	a, err := NewTestKit()
	require.NoError(t, err)
	b, err := NewTestKit()
	require.NoError(t, err)

	leadsA, leadsB := a.Leads(), b.Leads()
	require.Len(t, leadsB, len(leadsA))
	for i := range leadsA {
		assert.Equal(t, leadsA[i].ID, leadsB[i].ID)
		assert.Equal(t, leadsA[i].Handle, leadsB[i].Handle)
		assert.Equal(t, leadsA[i].FollowerCount, leadsB[i].FollowerCount)
	}
}

// TestKitCoversAllStorageShapes tests that the demo runs exercise every
// legacy payload shape the resolver handles, and that each resolves to a
// non-empty payload.
func TestKitCoversAllStorageShapes(t *testing.T) {
	kit, err := NewTestKit()
	require.NoError(t, err)

	shapes := map[string]int{}
	for _, lead := range kit.leads {
		rec := kit.records[lead.ID]
		if rec == nil {
			assert.Equal(t, models.AnalysisLight, lead.AnalysisType, "only light leads lack runs")
			continue
		}
		switch {
		case len(rec.Payloads) > 0:
			shapes["payloads"]++
		case len(rec.DeepPayload) > 0:
			shapes["deep_payload"]++
		case len(rec.XrayPayload) > 0:
			shapes["xray_payload"]++
		case len(rec.Body) > 0:
			shapes["body"]++
		}

		resolved := payload.Resolve(lead, rec)
		assert.False(t, resolved.IsEmpty(), "run for %s must resolve", lead.Handle)
	}

	for _, shape := range []string{"payloads", "deep_payload", "xray_payload", "body"} {
		assert.Greater(t, shapes[shape], 0, "demo data missing shape %s", shape)
	}
}

// TestMemoryRepository tests the in-memory LeadRepository port implementation.
func TestMemoryRepository(t *testing.T) {
	kit, err := NewTestKit()
	require.NoError(t, err)
	repo := kit.LeadRepository()

	leads, err := repo.ListLeads(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, leads)

	lead, rec, err := repo.FetchLeadWithLatestRun(context.Background(), leads[0].ID)
	require.NoError(t, err)
	assert.Equal(t, leads[0].Handle, lead.Handle)
	// The top-scored demo lead is an xray lead with a stored run.
	assert.NotNil(t, rec)
}
