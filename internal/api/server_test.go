package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscope/internal/testkit"
	"leadscope/ports"
)

func testServer(t *testing.T) (*Server, *EventHub) {
	t.Helper()
	kit, err := testkit.NewTestKit()
	require.NoError(t, err)
	hub := NewEventHub()
	t.Cleanup(hub.Stop)
	return NewServer(kit.LeadRepository(), hub, gin.TestMode), hub
}

// TestListLeads tests the lead list endpoint shape and score ordering.
func TestListLeads(t *testing.T) {
	server, _ := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
		Leads []struct {
			Handle string  `json:"handle"`
			Score  float64 `json:"score"`
		} `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Greater(t, resp.Count, 0)
	require.Len(t, resp.Leads, resp.Count)
	for i := 1; i < len(resp.Leads); i++ {
		assert.GreaterOrEqual(t, resp.Leads[i-1].Score, resp.Leads[i].Score, "leads must be score-descending")
	}
}

// TestGetLead tests fetching one lead with its latest analysis record.
func TestGetLead(t *testing.T) {
	server, _ := testServer(t)

	kit, err := testkit.NewTestKit()
	require.NoError(t, err)
	lead := kit.Leads()[0]

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads/"+lead.ID.String(), nil)
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Lead struct {
			Handle string `json:"handle"`
		} `json:"lead"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, lead.Handle, resp.Lead.Handle)
}

// TestGetLeadNotFound tests 404 for unknown lead ids and 400 for malformed ones.
func TestGetLeadNotFound(t *testing.T) {
	server, _ := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads/00000000-0000-0000-0000-000000000099", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/leads/not-a-uuid", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestEventHubFanOut tests that a build-complete notice reaches every
// subscriber.
func TestEventHubFanOut(t *testing.T) {
	hub := NewEventHub()
	defer hub.Stop()

	first := hub.Subscribe()
	second := hub.Subscribe()
	// Let the dispatch loop process both registrations.
	time.Sleep(20 * time.Millisecond)

	hub.BuildCompleted(ports.BuildNotice{
		AnalysisType:    "xray",
		LeadHandle:      "urban.roast.club",
		IsHighTierScore: true,
	})

	for _, ch := range []chan BuildEvent{first, second} {
		select {
		case event := <-ch:
			assert.Equal(t, "urban.roast.club", event.LeadHandle)
			assert.True(t, event.IsHighTierScore)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for build event")
		}
	}
}
