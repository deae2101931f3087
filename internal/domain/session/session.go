package session

import (
	"strings"

	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
)

// Session is the explicit acting-user context passed to every resolver
// and controller call. It replaces any notion of ambient identity state.
type Session struct {
	Email string
	Role  employee.Role

	// Employee is the authoritative record for the identity, nil until
	// the employees collection yields a match. While nil the Role is
	// provisional and all collection visibility degrades to empty.
	Employee *employee.Employee
}

// Resolved reports whether the identity has a matching employee record.
func (s Session) Resolved() bool {
	return s.Employee != nil
}

// Name returns the acting employee's name, or the email local part while
// the record is unresolved.
func (s Session) Name() string {
	if s.Employee != nil {
		return s.Employee.Name
	}
	if at := strings.IndexByte(s.Email, '@'); at > 0 {
		return s.Email[:at]
	}
	return s.Email
}

// ProvisionalRole derives a role from the identity email alone. This is
// a documented shortcut used only before the employee record loads: an
// email containing "admin" is treated as admin, everything else as
// employee. The Employee record's role wins once available.
func ProvisionalRole(email string) employee.Role {
	if strings.Contains(email, "admin") {
		return employee.RoleAdmin
	}
	return employee.RoleEmployee
}

// Resolve builds a session for an identity email against the loaded
// employees snapshot, reconciling the provisional role with the
// authoritative record.
func Resolve(email string, employees []employee.Employee) Session {
	s := Session{
		Email: email,
		Role:  ProvisionalRole(email),
	}
	for i := range employees {
		if employees[i].Email == email {
			s.Employee = &employees[i]
			s.Role = employees[i].Role
			break
		}
	}
	return s
}
