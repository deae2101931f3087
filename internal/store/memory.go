package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process document store. It backs development and
// tests, and is the reference implementation of the snapshot-delivery
// contract the remote store provides.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	hub         *Hub
}

func NewMemoryStore() *MemoryStore {
	collections := make(map[string]map[string]map[string]any, len(Collections))
	for _, name := range Collections {
		collections[name] = make(map[string]map[string]any)
	}
	return &MemoryStore{
		collections: collections,
		hub:         NewHub(),
	}
}

func (m *MemoryStore) Subscribe(ctx context.Context, collection string) (<-chan Snapshot, func(), error) {
	m.mu.RLock()
	_, ok := m.collections[collection]
	m.mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("subscribe %q: %w", collection, ErrUnknownCollection)
	}

	ch, cleanup := m.hub.Subscribe(collection)

	// Initial full snapshot, then one after every change.
	ch <- m.snapshot(collection)

	// Both context cancellation and the returned func tear down the
	// subscription; the hub closes the channel exactly once.
	var once sync.Once
	stop := func() { once.Do(cleanup) }
	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			stop()
		}()
	}

	return ch, stop, nil
}

func (m *MemoryStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "", fmt.Errorf("create in %q: empty document: %w", collection, ErrValidationFailed)
	}

	m.mu.Lock()
	docs, ok := m.collections[collection]
	if !ok {
		m.mu.Unlock()
		return "", fmt.Errorf("create in %q: %w", collection, ErrUnknownCollection)
	}
	id := uuid.NewString()
	docs[id] = copyFields(fields)
	m.mu.Unlock()

	m.hub.Publish(m.snapshot(collection))
	return id, nil
}

func (m *MemoryStore) Update(ctx context.Context, collection string, id string, fields map[string]any) error {
	m.mu.Lock()
	docs, ok := m.collections[collection]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("update in %q: %w", collection, ErrUnknownCollection)
	}
	doc, ok := docs[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("update %s/%s: %w", collection, id, ErrNotFound)
	}
	// Partial update: merge the given fields, nil unsets a field.
	for k, v := range fields {
		if v == nil {
			delete(doc, k)
			continue
		}
		doc[k] = v
	}
	m.mu.Unlock()

	m.hub.Publish(m.snapshot(collection))
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection string, id string) error {
	m.mu.Lock()
	docs, ok := m.collections[collection]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("delete in %q: %w", collection, ErrUnknownCollection)
	}
	if _, ok := docs[id]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("delete %s/%s: %w", collection, id, ErrNotFound)
	}
	delete(docs, id)
	m.mu.Unlock()

	m.hub.Publish(m.snapshot(collection))
	return nil
}

func (m *MemoryStore) snapshot(collection string) Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.collections[collection]
	out := make([]Document, 0, len(docs))
	for id, fields := range docs {
		out = append(out, Document{ID: id, Fields: copyFields(fields)})
	}
	// Stable order keeps repeated snapshots comparable.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return Snapshot{Collection: collection, Docs: out}
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
