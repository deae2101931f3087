package store

import "sync"

// Hub fans snapshots out to collection subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Snapshot]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Snapshot]struct{}),
	}
}

// Subscribe registers a subscriber for a collection and returns the
// snapshot channel and a cleanup function.
func (h *Hub) Subscribe(collection string) (chan Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Snapshot, 10)

	if h.subscribers[collection] == nil {
		h.subscribers[collection] = make(map[chan Snapshot]struct{})
	}
	h.subscribers[collection][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[collection], ch)
		close(ch)
		if len(h.subscribers[collection]) == 0 {
			delete(h.subscribers, collection)
		}
	}

	return ch, cleanup
}

// Publish sends a snapshot to all subscribers of its collection.
func (h *Hub) Publish(snap Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[snap.Collection]; ok {
		for ch := range subs {
			select {
			case ch <- snap:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a collection.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[collection]; ok {
		return len(subs)
	}
	return 0
}
