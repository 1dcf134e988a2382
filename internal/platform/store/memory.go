package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore holds slots as marshalled JSON in a map. Values round-trip
// through encoding/json so callers see the same serialization behavior as
// the durable backends. Intended for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(slot string, v any) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	s.mu.RLock()
	data, ok := s.slots[slot]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return nil
}

func (s *MemoryStore) Save(slot string, v any) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	s.mu.Lock()
	s.slots[slot] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(slot string) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	s.mu.Lock()
	delete(s.slots, slot)
	s.mu.Unlock()
	return nil
}
