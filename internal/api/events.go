package api

import (
	"log"
	"sync"
	"time"

	"leadscope/ports"
)

// BuildEvent is the wire form of a build-complete notice on the SSE stream.
type BuildEvent struct {
	AnalysisType    string    `json:"analysis_type"`
	LeadHandle      string    `json:"lead_handle"`
	IsHighTierScore bool      `json:"is_high_tier_score"`
	Timestamp       time.Time `json:"timestamp"`
}

// EventHub fans build-complete notices out to connected SSE clients. It
// implements ports.BuildObserver, so the container attaches it straight to
// the modal builder.
type EventHub struct {
	clients    map[chan BuildEvent]bool
	clientsMu  sync.RWMutex
	register   chan chan BuildEvent
	unregister chan chan BuildEvent
	broadcast  chan BuildEvent
	done       chan struct{}
}

// NewEventHub creates a hub and starts its dispatch loop.
func NewEventHub() *EventHub {
	hub := &EventHub{
		clients:    make(map[chan BuildEvent]bool),
		register:   make(chan chan BuildEvent, 10),
		unregister: make(chan chan BuildEvent, 10),
		broadcast:  make(chan BuildEvent, 100),
		done:       make(chan struct{}),
	}
	go hub.run()
	return hub
}

// BuildCompleted implements ports.BuildObserver. It must not block the
// build path: when the broadcast buffer is full the event is dropped.
func (h *EventHub) BuildCompleted(notice ports.BuildNotice) {
	event := BuildEvent{
		AnalysisType:    string(notice.AnalysisType),
		LeadHandle:      notice.LeadHandle,
		IsHighTierScore: notice.IsHighTierScore,
		Timestamp:       time.Now(),
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[EventHub] broadcast buffer full, dropping build event for %s", notice.LeadHandle)
	}
}

// Subscribe registers a new client channel.
func (h *EventHub) Subscribe() chan BuildEvent {
	ch := make(chan BuildEvent, 10)
	h.register <- ch
	return ch
}

// Unsubscribe removes a client channel; the hub closes it.
func (h *EventHub) Unsubscribe(ch chan BuildEvent) {
	h.unregister <- ch
}

// Stop shuts down the dispatch loop and closes all client channels.
func (h *EventHub) Stop() {
	close(h.done)
}

func (h *EventHub) run() {
	for {
		select {
		case ch := <-h.register:
			h.clientsMu.Lock()
			h.clients[ch] = true
			log.Printf("[EventHub] client subscribed (total: %d)", len(h.clients))
			h.clientsMu.Unlock()

		case ch := <-h.unregister:
			h.clientsMu.Lock()
			if h.clients[ch] {
				delete(h.clients, ch)
				close(ch)
			}
			h.clientsMu.Unlock()

		case event := <-h.broadcast:
			h.clientsMu.RLock()
			for ch := range h.clients {
				select {
				case ch <- event:
				default:
					// Slow client; skip rather than stall the loop.
				}
			}
			h.clientsMu.RUnlock()

		case <-h.done:
			h.clientsMu.Lock()
			for ch := range h.clients {
				close(ch)
			}
			h.clients = make(map[chan BuildEvent]bool)
			h.clientsMu.Unlock()
			return
		}
	}
}
