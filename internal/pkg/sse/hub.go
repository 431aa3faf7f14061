package sse

import (
	"sync"
)

// Event is a server-sent event destined for one recipient's open streams.
type Event struct {
	RecipientID string
	Name        string
	Data        interface{}
}

// Hub fans events out to every open stream a recipient has. It carries no
// persistence; missed events are recovered through the notification list
// endpoints on reconnect.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for a recipient and returns the event channel
// plus a cleanup function the caller must invoke when the connection closes.
func (h *Hub) Subscribe(recipientID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.streams[recipientID] == nil {
		h.streams[recipientID] = make(map[chan Event]struct{})
	}
	h.streams[recipientID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[recipientID], ch)
		close(ch)
		if len(h.streams[recipientID]) == 0 {
			delete(h.streams, recipientID)
		}
	}

	return ch, cleanup
}

// Publish delivers an event to all open streams of one recipient.
// Full channels are skipped rather than blocked on.
func (h *Hub) Publish(recipientID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.streams[recipientID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishToMany delivers an event to several recipients.
func (h *Hub) PublishToMany(recipientIDs []string, event Event) {
	for _, id := range recipientIDs {
		copied := event
		copied.RecipientID = id
		h.Publish(id, copied)
	}
}

// StreamCount returns the number of open streams for a recipient.
func (h *Hub) StreamCount(recipientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.streams[recipientID])
}
