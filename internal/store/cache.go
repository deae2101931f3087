package store

import (
	"context"
	"log/slog"
	"sync"
)

// Cache holds the latest delivered snapshot of every collection. Derived
// views are recomputed against it on demand, so delivering the same
// snapshot twice is a no-op for observers. A subscription error degrades
// the collection to its last-known snapshot instead of clearing it.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[string][]Document
}

func NewCache() *Cache {
	return &Cache{
		snapshots: make(map[string][]Document),
	}
}

// Run subscribes to every known collection and keeps the cache current
// until ctx is cancelled.
func (c *Cache) Run(ctx context.Context, s Store) error {
	for _, name := range Collections {
		ch, _, err := s.Subscribe(ctx, name)
		if err != nil {
			return err
		}
		go func(collection string, ch <-chan Snapshot) {
			for snap := range ch {
				c.Apply(snap)
			}
			// Channel closed: keep the last-known snapshot.
			slog.Warn("collection subscription ended", "collection", collection)
		}(name, ch)
	}
	return nil
}

// Apply replaces the held snapshot for the snapshot's collection.
func (c *Cache) Apply(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[snap.Collection] = snap.Docs
}

// Get returns the latest snapshot of a collection. Missing collections
// yield an empty slice: an unresolved reference reads as absent.
func (c *Cache) Get(collection string) []Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := c.snapshots[collection]
	out := make([]Document, len(docs))
	copy(out, docs)
	return out
}

// Lookup returns a single document by id from the held snapshot.
func (c *Cache) Lookup(collection, id string) (Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.snapshots[collection] {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}
