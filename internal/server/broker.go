package server

import (
	"encoding/json"
	"sync"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

// UpdateEvent is the payload pushed to connected pages after a state
// change so every open tab re-renders from the same state.
type UpdateEvent struct {
	Type   string       `json:"type"`
	CrewID string       `json:"crewId,omitempty"`
	Name   string       `json:"name,omitempty"`
	Stats  *squad.Stats `json:"stats,omitempty"`
}

// Broker is an in-process pub/sub for the SSE update stream.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded update events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the subscriber set.
func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends an event to all subscribers.
func (b *Broker) Publish(event UpdateEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
