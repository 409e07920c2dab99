// internal/service/broadcaster.go
package service

import "sync"

// ChangeEvent notifies dashboard clients that a tenant's source data moved
// and the series was recomputed or invalidated.
type ChangeEvent struct {
	Kind       string `json:"kind"`
	BusinessID string `json:"business_id"`
}

// broadcaster fans change events out to per-tenant subscribers (SSE
// streams). Slow subscribers drop events instead of blocking the listener.
type broadcaster struct {
	mu   sync.Mutex
	subs map[string]map[chan ChangeEvent]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[string]map[chan ChangeEvent]struct{})}
}

func (b *broadcaster) subscribe(businessID string) (<-chan ChangeEvent, func()) {
	ch := make(chan ChangeEvent, 8)

	b.mu.Lock()
	if b.subs[businessID] == nil {
		b.subs[businessID] = make(map[chan ChangeEvent]struct{})
	}
	b.subs[businessID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[businessID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, businessID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

func (b *broadcaster) publish(ev ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[ev.BusinessID] {
		select {
		case ch <- ev:
		default: // subscriber is behind, drop
		}
	}
}
