package leave

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Approved and Rejected are terminal; the transition out of Pending
// happens at most once.

type Type string

const (
	TypeVacation Type = "Vacation"
	TypeSick     Type = "Sick"
	TypePersonal Type = "Personal"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeVacation, TypeSick, TypePersonal:
		return Type(s), true
	}
	return "", false
}

// Request is a leave request. EmployeeName is denormalized from the
// employee record at creation time.
type Request struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Type         Type   `json:"type"`
	Reason       string `json:"reason"`
	Status       Status `json:"status"`
}
