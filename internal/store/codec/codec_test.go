package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
	"github.com/officeflow/officeflow-backend-go/internal/store"
)

func TestTeamMemberShapes(t *testing.T) {
	// Historical documents hold members either as plain strings or as
	// objects with a name field; both decode to the same list.
	doc := store.Document{ID: "t1", Fields: map[string]any{
		"name":     "Platform",
		"teamLead": "Alice",
		"members": []any{
			"Bob",
			map[string]any{"name": "Frank"},
		},
	}}

	decoded := Team(doc)
	assert.Equal(t, []string{"Bob", "Frank"}, decoded.Members)
}

func TestProjectLegacySingleAssignee(t *testing.T) {
	doc := store.Document{ID: "p1", Fields: map[string]any{
		"title":    "Migration",
		"assignee": "Bob",
		"status":   "In Progress",
	}}

	decoded := Project(doc)
	assert.Equal(t, []string{"Bob"}, decoded.Assignees)
}

func TestProjectUnknownStatusDefaultsToPending(t *testing.T) {
	doc := store.Document{ID: "p1", Fields: map[string]any{
		"title":  "Migration",
		"status": "Blocked",
	}}
	assert.Equal(t, "Pending", string(Project(doc).Status))
}

func TestEmployeeDecoding(t *testing.T) {
	doc := store.Document{ID: "e1", Fields: map[string]any{
		"name":       "Alice",
		"employeeId": "EMP-001",
		"role":       "manager",
		"email":      "alice@officeflow.io",
		"salary":     120000.0,
		"department": "Engineering",
		"contactInfo": map[string]any{
			"phone":   "+62 812",
			"address": "Jakarta",
			"emergencyContact": map[string]any{
				"name":     "Ann",
				"phone":    "+62 813",
				"relation": "sister",
			},
		},
	}}

	e := Employee(doc)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, "EMP-001", e.EmployeeCode)
	assert.Equal(t, employee.RoleManager, e.Role)
	assert.InDelta(t, 120000, e.Salary, 1e-9)
	assert.Equal(t, "+62 812", e.ContactInfo.Phone)
	require.NotNil(t, e.ContactInfo.EmergencyContact)
	assert.Equal(t, "Ann", e.ContactInfo.EmergencyContact.Name)
}

func TestEmployeeUnknownRoleDefaultsToEmployee(t *testing.T) {
	doc := store.Document{ID: "e1", Fields: map[string]any{
		"name": "Mystery",
		"role": "wizard",
	}}
	assert.Equal(t, employee.RoleEmployee, Employee(doc).Role)
}

func TestLeaveRequestDecoding(t *testing.T) {
	doc := store.Document{ID: "l1", Fields: map[string]any{
		"employeeId":   "e2",
		"employeeName": "Bob",
		"startDate":    "2026-09-01",
		"endDate":      "2026-09-03",
		"type":         "Vacation",
		"status":       "Pending",
	}}

	r := LeaveRequest(doc)
	assert.Equal(t, leave.StatusPending, r.Status)
	assert.Equal(t, leave.TypeVacation, r.Type)
	assert.Equal(t, "Bob", r.EmployeeName)
}

func TestTimestampRoundTrip(t *testing.T) {
	at := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	s := Timestamp(at)
	assert.Equal(t, "2026-08-31T09:30:00Z", s)

	parsed := store.FieldTime(map[string]any{"date": s}, "date")
	require.NotNil(t, parsed)
	assert.True(t, parsed.Equal(at))
}

func TestFieldTimeAcceptsPlainDates(t *testing.T) {
	parsed := store.FieldTime(map[string]any{"purchaseDate": "2025-01-15"}, "purchaseDate")
	require.NotNil(t, parsed)
	assert.Equal(t, 2025, parsed.Year())

	assert.Nil(t, store.FieldTime(map[string]any{"purchaseDate": "not-a-date"}, "purchaseDate"))
	assert.Nil(t, store.FieldTime(map[string]any{}, "purchaseDate"))
}
