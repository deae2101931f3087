package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
)

func TestProvisionalRole(t *testing.T) {
	assert.Equal(t, employee.RoleAdmin, ProvisionalRole("admin@officeflow.io"))
	assert.Equal(t, employee.RoleAdmin, ProvisionalRole("sysadmin@officeflow.io"))
	assert.Equal(t, employee.RoleEmployee, ProvisionalRole("bob@officeflow.io"))
	assert.Equal(t, employee.RoleEmployee, ProvisionalRole(""))
}

func TestResolveUsesEmployeeRecordRole(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Name: "Alice", Email: "alice@officeflow.io", Role: employee.RoleManager},
		// Email says admin, record says employee: the record wins.
		{ID: "e2", Name: "Adam", Email: "adam.admin@officeflow.io", Role: employee.RoleEmployee},
	}

	s := Resolve("alice@officeflow.io", employees)
	require.True(t, s.Resolved())
	assert.Equal(t, employee.RoleManager, s.Role)
	assert.Equal(t, "Alice", s.Name())

	s = Resolve("adam.admin@officeflow.io", employees)
	require.True(t, s.Resolved())
	assert.Equal(t, employee.RoleEmployee, s.Role)
}

func TestResolveUnmatchedStaysProvisional(t *testing.T) {
	s := Resolve("new.admin@officeflow.io", nil)
	assert.False(t, s.Resolved())
	assert.Equal(t, employee.RoleAdmin, s.Role)
	assert.Equal(t, "new.admin", s.Name())
}
