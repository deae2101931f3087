package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
)

func seededCache() *store.Cache {
	c := store.NewCache()
	c.Apply(store.Snapshot{Collection: store.CollectionEmployees, Docs: []store.Document{
		{ID: "e1", Fields: map[string]any{"name": "Alice", "role": "manager", "email": "alice@officeflow.io", "salary": 120000.0}},
		{ID: "e2", Fields: map[string]any{"name": "Bob", "role": "employee", "email": "bob@officeflow.io", "salary": 60000.0}},
	}})
	c.Apply(store.Snapshot{Collection: store.CollectionProjects, Docs: []store.Document{
		{ID: "p1", Fields: map[string]any{"title": "Migration", "status": "In Progress", "assignees": []any{"Bob"}, "assignedTeam": "t1"}},
		{ID: "p2", Fields: map[string]any{"title": "Website", "status": "Done", "assignees": []any{"Frank"}}},
	}})
	c.Apply(store.Snapshot{Collection: store.CollectionTeams, Docs: []store.Document{
		{ID: "t1", Fields: map[string]any{"name": "Platform", "teamLead": "Alice", "members": []any{"Bob"}}},
	}})
	c.Apply(store.Snapshot{Collection: store.CollectionLeaveRequests, Docs: []store.Document{
		{ID: "l1", Fields: map[string]any{"employeeId": "e2", "employeeName": "Bob", "status": "Pending"}},
		{ID: "l2", Fields: map[string]any{"employeeId": "e2", "employeeName": "Bob", "status": "Approved"}},
	}})
	return c
}

func sessionFor(id, name, email string, role employee.Role) session.Session {
	e := employee.Employee{ID: id, Name: name, Email: email, Role: role}
	return session.Session{Email: email, Role: role, Employee: &e}
}

func TestAdminDashboard(t *testing.T) {
	svc := NewService(seededCache())

	d := svc.ForSession(sessionFor("e3", "Carol", "carol.admin@officeflow.io", employee.RoleAdmin))
	require.Equal(t, KindAdmin, d.Kind)
	require.NotNil(t, d.Admin)

	assert.Equal(t, 2, d.Admin.EmployeeCount)
	assert.Equal(t, 2, d.Admin.TotalProjects)
	assert.Equal(t, 1, d.Admin.ActiveProjects) // Done is terminal
	assert.InDelta(t, 15000, d.Admin.TotalPayroll, 1e-9)
}

func TestManagerDashboard(t *testing.T) {
	svc := NewService(seededCache())

	d := svc.ForSession(sessionFor("e1", "Alice", "alice@officeflow.io", employee.RoleManager))
	require.Equal(t, KindManager, d.Kind)
	require.NotNil(t, d.Manager)

	require.NotNil(t, d.Manager.Team)
	assert.Equal(t, "Platform", d.Manager.Team.Name)
	assert.False(t, d.Manager.TeamAmbiguous)

	require.Len(t, d.Manager.Members, 1)
	assert.Equal(t, "Bob", d.Manager.Members[0].Name)

	require.Len(t, d.Manager.TeamProjects, 1)
	assert.Equal(t, "Migration", d.Manager.TeamProjects[0].Title)

	require.Len(t, d.Manager.PendingLeave, 1)
	assert.Equal(t, "l1", d.Manager.PendingLeave[0].ID)
}

func TestManagerDashboardAmbiguousLead(t *testing.T) {
	c := seededCache()
	c.Apply(store.Snapshot{Collection: store.CollectionTeams, Docs: []store.Document{
		{ID: "t1", Fields: map[string]any{"name": "Platform", "teamLead": "Alice", "members": []any{"Bob"}}},
		{ID: "t2", Fields: map[string]any{"name": "Design", "teamLead": "Alice"}},
	}})
	svc := NewService(c)

	d := svc.ForSession(sessionFor("e1", "Alice", "alice@officeflow.io", employee.RoleManager))
	require.NotNil(t, d.Manager)
	assert.True(t, d.Manager.TeamAmbiguous)
	assert.Nil(t, d.Manager.Team)
	assert.Empty(t, d.Manager.Members)
	assert.Empty(t, d.Manager.PendingLeave)
}

func TestEmployeeDashboard(t *testing.T) {
	svc := NewService(seededCache())

	d := svc.ForSession(sessionFor("e2", "Bob", "bob@officeflow.io", employee.RoleEmployee))
	require.Equal(t, KindEmployee, d.Kind)
	require.NotNil(t, d.Employee)

	require.Len(t, d.Employee.MyProjects, 1)
	assert.Equal(t, "Migration", d.Employee.MyProjects[0].Title)
}

func TestITSupportGetsEmployeeDashboard(t *testing.T) {
	svc := NewService(seededCache())

	d := svc.ForSession(sessionFor("e4", "Dana", "dana@officeflow.io", employee.RoleITSupport))
	assert.Equal(t, KindEmployee, d.Kind)
}
