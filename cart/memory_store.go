package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps snapshots in a map. Used in tests and as a
// fallback when no Redis address is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, owner string, lines []LineItem) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[owner] = data
	return nil
}

func (s *MemoryStore) Load(_ context.Context, owner string) ([]LineItem, error) {
	s.mu.RLock()
	data, ok := s.snapshots[owner]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var lines []LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
