package services

import "sync"

// InsightsHub fans out analytics payloads to WebSocket subscribers. The
// session facade's onChange hook feeds it after every mutation; each
// /ws/insights connection holds one subscription.
type InsightsHub struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

func NewInsightsHub() *InsightsHub {
	return &InsightsHub{subs: make(map[chan []byte]struct{})}
}

// Subscribe registers a new subscriber and returns its channel plus an
// unsubscribe function. The channel is buffered; a slow consumer drops
// updates instead of blocking the mutation path.
func (h *InsightsHub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, unsubscribe
}

// Broadcast delivers payload to every current subscriber.
func (h *InsightsHub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			// Subscriber is not keeping up; skip this update.
		}
	}
}
