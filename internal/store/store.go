package store

import "context"

// Collection names as they exist in the remote document store.
const (
	CollectionUsers            = "users"
	CollectionEmployees        = "employees"
	CollectionProjects         = "projects"
	CollectionTeams            = "teams"
	CollectionLeaveRequests    = "leave_requests"
	CollectionAnnouncements    = "announcements"
	CollectionAssets           = "assets"
	CollectionMaintenance      = "maintenance"
	CollectionAssetAssignments = "asset_assignments"
)

// Collections lists every collection the console subscribes to.
var Collections = []string{
	CollectionUsers,
	CollectionEmployees,
	CollectionProjects,
	CollectionTeams,
	CollectionLeaveRequests,
	CollectionAnnouncements,
	CollectionAssets,
	CollectionMaintenance,
	CollectionAssetAssignments,
}

// Document is one record of a collection. Fields holds the raw decoded
// document body; typed decoding happens in the codec package.
type Document struct {
	ID     string
	Fields map[string]any
}

// Snapshot is a full point-in-time copy of a collection. Subscriptions
// deliver complete snapshots on every change, never diffs.
type Snapshot struct {
	Collection string
	Docs       []Document
}

// Store is the data-access facade over the remote document store.
// Mutations are fire-and-forget from the caller's perspective: a failure
// means the store was never mutated, and the next snapshot is always the
// source of truth.
type Store interface {
	// Subscribe returns a live snapshot sequence for a collection and a
	// cleanup function. The current snapshot is delivered immediately,
	// then again after every change.
	Subscribe(ctx context.Context, collection string) (<-chan Snapshot, func(), error)

	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection string, id string, fields map[string]any) error
	Delete(ctx context.Context, collection string, id string) error
}
