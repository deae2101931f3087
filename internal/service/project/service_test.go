package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

func syncCache(t *testing.T, st store.Store, cache *store.Cache, collections ...string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, name := range collections {
		ch, _, err := st.Subscribe(ctx, name)
		require.NoError(t, err)
		cache.Apply(<-ch)
	}
}

func adminSession() session.Session {
	e := employee.Employee{ID: "e3", Name: "Carol", Email: "carol.admin@officeflow.io", Role: employee.RoleAdmin}
	return session.Session{Email: e.Email, Role: e.Role, Employee: &e}
}

func managerSession() session.Session {
	e := employee.Employee{ID: "e1", Name: "Alice", Email: "alice@officeflow.io", Role: employee.RoleManager}
	return session.Session{Email: e.Email, Role: e.Role, Employee: &e}
}

func assigneeSession() session.Session {
	e := employee.Employee{ID: "e2", Name: "Bob", Email: "bob@officeflow.io", Role: employee.RoleEmployee}
	return session.Session{Email: e.Email, Role: e.Role, Employee: &e}
}

func TestCreateStartsPending(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, managerSession(), project.CreateProjectRequest{
		Title:     "Migration",
		Assignees: []string{"Bob"},
		Deadline:  "2026-12-31",
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects)

	doc, ok := cache.Lookup(store.CollectionProjects, id)
	require.True(t, ok)
	assert.Equal(t, project.StatusPending, codec.Project(doc).Status)
}

func TestCreateRequiresManagerOrAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, store.NewCache())

	_, err := svc.Create(context.Background(), assigneeSession(), project.CreateProjectRequest{Title: "Side quest"})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestListScopedByVisibility(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	_, err := svc.Create(ctx, adminSession(), project.CreateProjectRequest{
		Title:     "Migration",
		Assignees: []string{"Bob"},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, adminSession(), project.CreateProjectRequest{
		Title:     "Website",
		Assignees: []string{"Frank"},
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects, store.CollectionTeams)

	assert.Len(t, svc.List(adminSession()), 2)

	visible := svc.List(assigneeSession())
	require.Len(t, visible, 1)
	assert.Equal(t, "Migration", visible[0].Title)
}

func TestUpdateStatusAllowsAnyVisibleUser(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), project.CreateProjectRequest{
		Title:     "Migration",
		Assignees: []string{"Bob"},
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects, store.CollectionTeams)

	// An assignee may transition status, including straight to Done.
	err = svc.UpdateStatus(ctx, assigneeSession(), id, project.UpdateStatusRequest{Status: "Done"})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects)

	doc, _ := cache.Lookup(store.CollectionProjects, id)
	assert.Equal(t, project.StatusDone, codec.Project(doc).Status)

	// And back again: transitions are unordered.
	err = svc.UpdateStatus(ctx, assigneeSession(), id, project.UpdateStatusRequest{Status: "In Progress"})
	assert.NoError(t, err)
}

func TestUpdateStatusDeniedOutsideVisibility(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), project.CreateProjectRequest{
		Title:     "Website",
		Assignees: []string{"Frank"},
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects, store.CollectionTeams)

	err = svc.UpdateStatus(ctx, assigneeSession(), id, project.UpdateStatusRequest{Status: "Done"})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestDeleteIsAdminOnlyWithConfirmation(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), project.CreateProjectRequest{Title: "Migration"})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects)

	err = svc.Delete(ctx, managerSession(), id, project.DeleteProjectRequest{Confirm: true})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Delete(ctx, adminSession(), id, project.DeleteProjectRequest{})
	assert.Error(t, err)

	require.NoError(t, svc.Delete(ctx, adminSession(), id, project.DeleteProjectRequest{Confirm: true}))
}

func TestUnresolvedIdentityCannotMutate(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), project.CreateProjectRequest{Title: "Migration"})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionProjects)

	// An identity with no employee record carries only a provisional
	// role; even admin grants no write access.
	sess := session.Session{Email: "new.admin@officeflow.io", Role: employee.RoleAdmin}

	_, err = svc.Create(ctx, sess, project.CreateProjectRequest{Title: "Side quest"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Update(ctx, sess, id, project.UpdateProjectRequest{})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Delete(ctx, sess, id, project.DeleteProjectRequest{Confirm: true})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}
