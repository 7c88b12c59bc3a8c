package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Manager hands out per-owner carts backed by a shared snapshot store.
// Each owner gets a single live Cart instance for the lifetime of the
// process: handing the same instance to every request keeps the cart's
// mutex meaningful, so concurrent mutations for one owner serialize
// instead of racing load-modify-save cycles on the snapshot.
type Manager struct {
	store Store
	newID IDGenerator

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager(store Store, newID IDGenerator) *Manager {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Manager{
		store: store,
		newID: newID,
		carts: make(map[string]*Cart),
	}
}

// ForOwner returns the cart belonging to the given user or guest id,
// rehydrating it from the last snapshot on first access. Every call for
// the same owner returns the same instance.
func (m *Manager) ForOwner(ctx context.Context, owner string) (*Cart, error) {
	m.mu.Lock()
	if c, ok := m.carts[owner]; ok {
		m.mu.Unlock()
		return c, nil
	}
	m.mu.Unlock()

	loaded, err := Load(ctx, owner, m.store, m.newID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have hydrated the owner while we loaded.
	if c, ok := m.carts[owner]; ok {
		return c, nil
	}
	m.carts[owner] = loaded
	return loaded, nil
}
