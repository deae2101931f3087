// Package postgres backs the document-store facade with a single JSONB
// documents table. Snapshot delivery mirrors the remote store contract:
// a full snapshot on subscribe and after every write through this
// process.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/officeflow/officeflow-backend-go/internal/pkg/database"
	"github.com/officeflow/officeflow-backend-go/internal/store"
)

const schema = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id         TEXT NOT NULL,
		fields     JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (collection, id)
	)
`

type Store struct {
	db  *database.DB
	hub *store.Hub
}

func New(ctx context.Context, db *database.DB) (*Store, error) {
	if _, err := db.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure documents table: %w", err)
	}
	return &Store{db: db, hub: store.NewHub()}, nil
}

func (s *Store) Subscribe(ctx context.Context, collection string) (<-chan store.Snapshot, func(), error) {
	if !knownCollection(collection) {
		return nil, nil, fmt.Errorf("subscribe %q: %w", collection, store.ErrUnknownCollection)
	}

	ch, cleanup := s.hub.Subscribe(collection)

	snap, err := s.snapshot(ctx, collection)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	ch <- snap

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

func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if !knownCollection(collection) {
		return "", fmt.Errorf("create in %q: %w", collection, store.ErrUnknownCollection)
	}
	if len(fields) == 0 {
		return "", fmt.Errorf("create in %q: empty document: %w", collection, store.ErrValidationFailed)
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", store.ErrValidationFailed)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES ($1, $2, $3)
	`, collection, id, body)
	if err != nil {
		return "", unavailable("create", err)
	}

	s.broadcast(ctx, collection)
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection string, id string, fields map[string]any) error {
	// nil values unset fields; everything else merges into the document.
	removed := make([]string, 0)
	merged := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			removed = append(removed, k)
			continue
		}
		merged[k] = v
	}

	body, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode document: %w", store.ErrValidationFailed)
	}

	var updatedID string
	err = s.db.QueryRow(ctx, `
		UPDATE documents
		SET fields = (fields - $4::text[]) || $3, updated_at = NOW()
		WHERE collection = $1 AND id = $2
		RETURNING id
	`, collection, id, body, removed).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update %s/%s: %w", collection, id, store.ErrNotFound)
		}
		return unavailable("update", err)
	}

	s.broadcast(ctx, collection)
	return nil
}

func (s *Store) Delete(ctx context.Context, collection string, id string) error {
	var deletedID string
	err := s.db.QueryRow(ctx, `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
		RETURNING id
	`, collection, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("delete %s/%s: %w", collection, id, store.ErrNotFound)
		}
		return unavailable("delete", err)
	}

	s.broadcast(ctx, collection)
	return nil
}

func (s *Store) snapshot(ctx context.Context, collection string) (store.Snapshot, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, fields
		FROM documents
		WHERE collection = $1
		ORDER BY id
	`, collection)
	if err != nil {
		return store.Snapshot{}, unavailable("snapshot", err)
	}
	defer rows.Close()

	snap := store.Snapshot{Collection: collection}
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return store.Snapshot{}, unavailable("snapshot", err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return store.Snapshot{}, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		snap.Docs = append(snap.Docs, store.Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return store.Snapshot{}, unavailable("snapshot", err)
	}

	return snap, nil
}

func (s *Store) broadcast(ctx context.Context, collection string) {
	if s.hub.SubscriberCount(collection) == 0 {
		return
	}
	snap, err := s.snapshot(ctx, collection)
	if err != nil {
		// Subscribers keep their last-known snapshot on read failure.
		return
	}
	s.hub.Publish(snap)
}

func knownCollection(name string) bool {
	for _, c := range store.Collections {
		if c == name {
			return true
		}
	}
	return false
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, store.ErrUnavailable)
}
