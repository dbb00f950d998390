package lifecycle

import (
	"sync"

	"github.com/osse101/incomeengine/internal/domain"
)

// Store is the generic event storage the manager is a client of
type Store interface {
	Add(evt *domain.Event)
	Update(evt *domain.Event)
	Remove(id string) bool
	Get(id string) (*domain.Event, bool)
	All() []*domain.Event
	ByTarget(target domain.EventTarget) []*domain.Event
}

// MemoryStore keeps events in insertion order
type MemoryStore struct {
	mu     sync.RWMutex
	events []*domain.Event
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends an event
func (s *MemoryStore) Add(evt *domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

// Update replaces the stored event with the same id
func (s *MemoryStore) Update(evt *domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == evt.ID {
			s.events[i] = evt
			return
		}
	}
}

// Remove deletes an event by id
func (s *MemoryStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Get looks up an event by id
func (s *MemoryStore) Get(id string) (*domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, evt := range s.events {
		if evt.ID == id {
			return evt, true
		}
	}
	return nil, false
}

// All returns every stored event in insertion order
func (s *MemoryStore) All() []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Event(nil), s.events...)
}

// ByTarget returns events attached to the target. Asset targets match on
// instance id, niche targets on niche id.
func (s *MemoryStore) ByTarget(target domain.EventTarget) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Event
	for _, evt := range s.events {
		if sameTarget(evt.Target, target) {
			out = append(out, evt)
		}
	}
	return out
}

func sameTarget(a, b domain.EventTarget) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case domain.EventTargetAsset:
		return a.InstanceID == b.InstanceID && (b.AssetID == "" || a.AssetID == b.AssetID)
	case domain.EventTargetNiche:
		return a.NicheID == b.NicheID
	}
	return false
}
