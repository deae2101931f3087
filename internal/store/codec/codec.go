// Package codec decodes raw store documents into domain entities. All
// tolerance for historical document shapes lives here; business logic
// only ever sees normalized types.
package codec

import (
	"time"

	"github.com/officeflow/officeflow-backend-go/internal/domain/announcement"
	"github.com/officeflow/officeflow-backend-go/internal/domain/asset"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
	"github.com/officeflow/officeflow-backend-go/internal/store"
)

func Employee(doc store.Document) employee.Employee {
	f := doc.Fields
	role, ok := employee.ParseRole(store.FieldString(f, "role"))
	if !ok {
		role = employee.RoleEmployee
	}

	emp := employee.Employee{
		ID:              doc.ID,
		EmployeeCode:    store.FieldString(f, "employeeId"),
		Name:            store.FieldString(f, "name"),
		Role:            role,
		Email:           store.FieldString(f, "email"),
		Salary:          store.FieldFloat(f, "salary"),
		Department:      store.FieldString(f, "department"),
		JoinedDate:      store.FieldTime(f, "joinedDate"),
		MonthlyTarget:   store.FieldFloat(f, "monthlyTarget"),
		TasksCompleted:  store.FieldFloat(f, "tasksCompleted"),
		EfficiencyScore: store.FieldFloat(f, "efficiencyScore"),
		OnTimeScore:     store.FieldFloat(f, "onTimeScore"),
	}

	if contact := store.FieldMap(f, "contactInfo"); contact != nil {
		emp.ContactInfo = employee.ContactInfo{
			Phone:   store.FieldString(contact, "phone"),
			Address: store.FieldString(contact, "address"),
		}
		if ec := store.FieldMap(contact, "emergencyContact"); ec != nil {
			emp.ContactInfo.EmergencyContact = &employee.EmergencyContact{
				Name:     store.FieldString(ec, "name"),
				Phone:    store.FieldString(ec, "phone"),
				Relation: store.FieldString(ec, "relation"),
			}
		}
	}

	for _, r := range store.FieldMapList(f, "reviews") {
		emp.Reviews = append(emp.Reviews, employee.Review{
			ID:       store.FieldString(r, "id"),
			Title:    store.FieldString(r, "title"),
			Comment:  store.FieldString(r, "comment"),
			Date:     store.FieldString(r, "date"),
			Reviewer: store.FieldString(r, "reviewer"),
		})
	}

	return emp
}

func Employees(docs []store.Document) []employee.Employee {
	out := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Employee(doc))
	}
	return out
}

func Project(doc store.Document) project.Project {
	f := doc.Fields
	status, ok := project.ParseStatus(store.FieldString(f, "status"))
	if !ok {
		status = project.StatusPending
	}

	p := project.Project{
		ID:           doc.ID,
		Title:        store.FieldString(f, "title"),
		Assignees:    store.FieldNameList(f, "assignees"),
		AssignedTeam: store.FieldString(f, "assignedTeam"),
		Status:       status,
		Deadline:     store.FieldString(f, "deadline"),
	}

	// Legacy single-assignee documents.
	if len(p.Assignees) == 0 {
		if a := store.FieldString(f, "assignee"); a != "" {
			p.Assignees = []string{a}
		}
	}

	return p
}

func Projects(docs []store.Document) []project.Project {
	out := make([]project.Project, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Project(doc))
	}
	return out
}

func Team(doc store.Document) team.Team {
	f := doc.Fields
	return team.Team{
		ID:       doc.ID,
		Name:     store.FieldString(f, "name"),
		TeamLead: store.FieldString(f, "teamLead"),
		Members:  store.FieldNameList(f, "members"),
	}
}

func Teams(docs []store.Document) []team.Team {
	out := make([]team.Team, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Team(doc))
	}
	return out
}

func LeaveRequest(doc store.Document) leave.Request {
	f := doc.Fields
	return leave.Request{
		ID:           doc.ID,
		EmployeeID:   store.FieldString(f, "employeeId"),
		EmployeeName: store.FieldString(f, "employeeName"),
		StartDate:    store.FieldString(f, "startDate"),
		EndDate:      store.FieldString(f, "endDate"),
		Type:         leave.Type(store.FieldString(f, "type")),
		Reason:       store.FieldString(f, "reason"),
		Status:       leave.Status(store.FieldString(f, "status")),
	}
}

func LeaveRequests(docs []store.Document) []leave.Request {
	out := make([]leave.Request, 0, len(docs))
	for _, doc := range docs {
		out = append(out, LeaveRequest(doc))
	}
	return out
}

func Announcement(doc store.Document) announcement.Announcement {
	f := doc.Fields
	a := announcement.Announcement{
		ID:      doc.ID,
		Title:   store.FieldString(f, "title"),
		Content: store.FieldString(f, "content"),
		Author:  store.FieldString(f, "author"),
	}
	if t := store.FieldTime(f, "date"); t != nil {
		a.Date = *t
	}
	return a
}

func Announcements(docs []store.Document) []announcement.Announcement {
	out := make([]announcement.Announcement, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Announcement(doc))
	}
	return out
}

func Asset(doc store.Document) asset.Asset {
	f := doc.Fields
	status, ok := asset.ParseStatus(store.FieldString(f, "status"))
	if !ok {
		status = asset.StatusAvailable
	}
	return asset.Asset{
		ID:               doc.ID,
		Name:             store.FieldString(f, "name"),
		Kind:             asset.Kind(store.FieldString(f, "type")),
		Category:         asset.Category(store.FieldString(f, "category")),
		SerialNumber:     store.FieldString(f, "serialNumber"),
		Status:           status,
		PurchaseDate:     store.FieldTime(f, "purchaseDate"),
		PurchasePrice:    store.FieldFloat(f, "purchasePrice"),
		WarrantyExpiry:   store.FieldTime(f, "warrantyExpiry"),
		DepreciationRate: store.FieldFloatPtr(f, "depreciationRate"),
		AssignedTo:       store.FieldString(f, "assignedTo"),
		Specifications:   store.FieldStringMap(f, "specifications"),
	}
}

func Assets(docs []store.Document) []asset.Asset {
	out := make([]asset.Asset, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Asset(doc))
	}
	return out
}

func MaintenanceRecord(doc store.Document) asset.MaintenanceRecord {
	f := doc.Fields
	return asset.MaintenanceRecord{
		ID:          doc.ID,
		AssetID:     store.FieldString(f, "assetId"),
		Date:        store.FieldString(f, "date"),
		Type:        asset.MaintenanceType(store.FieldString(f, "type")),
		Cost:        store.FieldFloat(f, "cost"),
		Description: store.FieldString(f, "description"),
		Technician:  store.FieldString(f, "technician"),
	}
}

func MaintenanceRecords(docs []store.Document) []asset.MaintenanceRecord {
	out := make([]asset.MaintenanceRecord, 0, len(docs))
	for _, doc := range docs {
		out = append(out, MaintenanceRecord(doc))
	}
	return out
}

func Assignment(doc store.Document) asset.Assignment {
	f := doc.Fields
	return asset.Assignment{
		ID:           doc.ID,
		AssetID:      store.FieldString(f, "assetId"),
		EmployeeID:   store.FieldString(f, "employeeId"),
		AssignedDate: store.FieldString(f, "assignedDate"),
		ReturnDate:   store.FieldString(f, "returnDate"),
		Notes:        store.FieldString(f, "notes"),
	}
}

func Assignments(docs []store.Document) []asset.Assignment {
	out := make([]asset.Assignment, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Assignment(doc))
	}
	return out
}

// Timestamp formats times the way documents store them.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
