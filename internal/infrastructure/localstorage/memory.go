package localstorage

import (
	"context"
	"sync"

	"dental_lab/internal/usecase/interfaces"
)

// MemoryStore is a process-local replacement for SQLiteStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]map[string][]byte{}}
}

func (s *MemoryStore) ForOwner(ownerID string) interfaces.ILocalStorage {
	return &memoryNamespace{store: s, namespace: ownerID}
}

type memoryNamespace struct {
	store     *MemoryStore
	namespace string
}

var _ interfaces.ILocalStorage = (*memoryNamespace)(nil)

func (n *memoryNamespace) Get(_ context.Context, key string) ([]byte, bool, error) {
	n.store.mu.RLock()
	defer n.store.mu.RUnlock()
	v, ok := n.store.data[n.namespace][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (n *memoryNamespace) Set(_ context.Context, key string, value []byte) error {
	n.store.mu.Lock()
	defer n.store.mu.Unlock()
	ns, ok := n.store.data[n.namespace]
	if !ok {
		ns = map[string][]byte{}
		n.store.data[n.namespace] = ns
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}

func (n *memoryNamespace) Remove(_ context.Context, key string) error {
	n.store.mu.Lock()
	defer n.store.mu.Unlock()
	delete(n.store.data[n.namespace], key)
	return nil
}
