package employee

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"      // Full access, user management, payroll
	RoleManager   Role = "manager"    // Team-scoped visibility, leave approval
	RoleEmployee  Role = "employee"   // Own data only
	RoleITSupport Role = "it_support" // Asset management access
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee, RoleITSupport:
		return Role(s), true
	}
	return "", false
}

// EmergencyContact is part of an employee's contact info.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

type ContactInfo struct {
	Phone            string            `json:"phone,omitempty"`
	Address          string            `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// Review is a performance review entry attached to an employee.
type Review struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
	Reviewer string `json:"reviewer"`
}

// Employee is the authoritative record for a console user. Email is the
// identity key; the Role on this record wins over any provisional role
// derived at sign-in.
type Employee struct {
	ID           string      `json:"id"`
	EmployeeCode string      `json:"employeeId,omitempty"`
	Name         string      `json:"name"`
	Role         Role        `json:"role"`
	Email        string      `json:"email"`
	Salary       float64     `json:"salary"` // annual
	Department   string      `json:"department,omitempty"`
	ContactInfo  ContactInfo `json:"contactInfo,omitempty"`
	JoinedDate   *time.Time  `json:"joinedDate,omitempty"`

	// Performance metrics
	MonthlyTarget   float64 `json:"monthlyTarget,omitempty"`
	TasksCompleted  float64 `json:"tasksCompleted,omitempty"`
	EfficiencyScore float64 `json:"efficiencyScore,omitempty"`
	OnTimeScore     float64 `json:"onTimeScore,omitempty"`

	Reviews []Review `json:"reviews,omitempty"`
}
