// Package api is the JSON side of the dashboard: lead data for external
// consumers plus the build-event SSE stream fed by the modal builder's
// observer hook.
package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadscope/domain/core"
	"leadscope/ports"
)

// Server is the gin-backed JSON API.
type Server struct {
	engine *gin.Engine
	leads  ports.LeadRepository
	hub    *EventHub
}

// NewServer wires the API routes.
func NewServer(leads ports.LeadRepository, hub *EventHub, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}
	s := &Server{
		engine: gin.New(),
		leads:  leads,
		hub:    hub,
	}
	s.engine.Use(gin.Logger(), gin.Recovery())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/api/leads", s.handleListLeads)
	s.engine.GET("/api/leads/:id", s.handleGetLead)
	s.engine.GET("/api/events/builds", s.handleBuildEvents)
}

// Handler exposes the underlying handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the API server on the given port.
func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}

func (s *Server) handleListLeads(c *gin.Context) {
	leads, err := s.leads.ListLeads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

func (s *Server) handleGetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}

	lead, rec, err := s.leads.FetchLeadWithLatestRun(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead, "analysis_record": rec})
}

// handleBuildEvents streams build-complete notices as server-sent events.
func (s *Server) handleBuildEvents(c *gin.Context) {
	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("build_complete", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
