package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
)

func syncCache(t *testing.T, st store.Store, cache *store.Cache, collection string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, _, err := st.Subscribe(ctx, collection)
	require.NoError(t, err)
	cache.Apply(<-ch)
}

func adminSession() session.Session {
	e := employee.Employee{ID: "e3", Name: "Carol", Email: "carol.admin@officeflow.io", Role: employee.RoleAdmin}
	return session.Session{Email: e.Email, Role: e.Role, Employee: &e}
}

func TestPostIsAdminOnly(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, store.NewCache())

	e := employee.Employee{ID: "e1", Name: "Alice", Email: "alice@officeflow.io", Role: employee.RoleManager}
	_, err := svc.Post(context.Background(), session.Session{Email: e.Email, Role: e.Role, Employee: &e}, PostRequest{
		Title:   "Maintenance window",
		Content: "Saturday 02:00 UTC",
	})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestPostStampsAuthorAndDate(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) }

	id, err := svc.Post(ctx, adminSession(), PostRequest{
		Title:   "Maintenance window",
		Content: "Saturday 02:00 UTC",
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionAnnouncements)

	doc, ok := cache.Lookup(store.CollectionAnnouncements, id)
	require.True(t, ok)
	assert.Equal(t, "Carol", doc.Fields["author"])
	assert.Equal(t, "2026-08-31T09:00:00Z", doc.Fields["date"])
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	times := []time.Time{
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	}
	titles := []string{"first", "third", "second"}
	for i := range times {
		now := times[i]
		svc.now = func() time.Time { return now }
		_, err := svc.Post(ctx, adminSession(), PostRequest{Title: titles[i], Content: "x"})
		require.NoError(t, err)
	}
	syncCache(t, st, cache, store.CollectionAnnouncements)

	out := svc.List(adminSession())
	require.Len(t, out, 3)
	assert.Equal(t, "third", out[0].Title)
	assert.Equal(t, "second", out[1].Title)
	assert.Equal(t, "first", out[2].Title)
}

func TestPostValidates(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, store.NewCache())

	_, err := svc.Post(context.Background(), adminSession(), PostRequest{Title: "", Content: ""})
	assert.Error(t, err)
}

func TestPostRequiresResolvedIdentity(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, store.NewCache())

	// A provisional admin role without an employee record cannot post.
	sess := session.Session{Email: "new.admin@officeflow.io", Role: employee.RoleAdmin}
	_, err := svc.Post(context.Background(), sess, PostRequest{
		Title:   "Maintenance window",
		Content: "Saturday 02:00 UTC",
	})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}
