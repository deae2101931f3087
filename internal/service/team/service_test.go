package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
	"github.com/officeflow/officeflow-backend-go/internal/store"
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

func TestCreateRejectsDuplicateLead(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	_, err := svc.Create(ctx, adminSession(), team.CreateTeamRequest{
		Name:     "Platform",
		TeamLead: "Alice",
		Members:  []string{"Bob"},
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionTeams)

	_, err = svc.Create(ctx, adminSession(), team.CreateTeamRequest{
		Name:     "Design",
		TeamLead: "Alice",
	})
	assert.ErrorIs(t, err, team.ErrDuplicateTeamLead)
}

func TestCreateRejectsLeadInMembers(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, store.NewCache())

	_, err := svc.Create(context.Background(), adminSession(), team.CreateTeamRequest{
		Name:     "Platform",
		TeamLead: "Alice",
		Members:  []string{"Alice", "Bob"},
	})
	assert.Error(t, err)
}

func TestTeamManagementIsAdminOnly(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	_, err := svc.Create(ctx, managerSession(), team.CreateTeamRequest{Name: "Platform"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.AddMember(ctx, managerSession(), "t1", team.MemberRequest{Name: "Bob"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Delete(ctx, managerSession(), "t1", team.DeleteTeamRequest{Confirm: true})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestMembership(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), team.CreateTeamRequest{
		Name:     "Platform",
		TeamLead: "Alice",
		Members:  []string{"Bob"},
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionTeams)

	err = svc.AddMember(ctx, adminSession(), id, team.MemberRequest{Name: "Bob"})
	assert.ErrorIs(t, err, team.ErrMemberAlreadyInTeam)

	require.NoError(t, svc.AddMember(ctx, adminSession(), id, team.MemberRequest{Name: "Frank"}))
	syncCache(t, st, cache, store.CollectionTeams)

	err = svc.RemoveMember(ctx, adminSession(), id, team.MemberRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, team.ErrMemberNotInTeam)

	require.NoError(t, svc.RemoveMember(ctx, adminSession(), id, team.MemberRequest{Name: "Bob"}))
	syncCache(t, st, cache, store.CollectionTeams)

	teams := svc.List(adminSession())
	require.Len(t, teams, 1)
	assert.Equal(t, []string{"Frank"}, teams[0].Members)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), team.CreateTeamRequest{Name: "Platform", TeamLead: "Alice"})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionTeams)

	err = svc.Delete(ctx, adminSession(), id, team.DeleteTeamRequest{})
	assert.Error(t, err)

	require.NoError(t, svc.Delete(ctx, adminSession(), id, team.DeleteTeamRequest{Confirm: true}))
	syncCache(t, st, cache, store.CollectionTeams)
	assert.Empty(t, svc.List(adminSession()))
}

func TestUnresolvedIdentityCannotMutate(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)

	id, err := svc.Create(ctx, adminSession(), team.CreateTeamRequest{Name: "Platform", TeamLead: "Alice"})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionTeams)

	// A provisional admin role without an employee record grants no
	// write access.
	sess := session.Session{Email: "new.admin@officeflow.io", Role: employee.RoleAdmin}

	_, err = svc.Create(ctx, sess, team.CreateTeamRequest{Name: "Design", TeamLead: "Eve"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.AddMember(ctx, sess, id, team.MemberRequest{Name: "Bob"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.RemoveMember(ctx, sess, id, team.MemberRequest{Name: "Bob"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Delete(ctx, sess, id, team.DeleteTeamRequest{Confirm: true})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}
