package payroll

import (
	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

// SummaryRow is one employee line on the payroll screen.
type SummaryRow struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department,omitempty"`
	AnnualSalary float64 `json:"annualSalary"`
	MonthlyGross float64 `json:"monthlyGross"`
}

type Summary struct {
	Rows  []SummaryRow `json:"rows"`
	Total float64      `json:"total"`
}

type Service struct {
	cache *store.Cache
}

func NewService(cache *store.Cache) *Service {
	return &Service{cache: cache}
}

// Summary derives the payroll screen. Admin only.
func (s *Service) Summary(sess session.Session) (Summary, error) {
	if !authz.CanViewPayroll(sess.Role) {
		return Summary{}, authz.ErrForbidden
	}

	employees := codec.Employees(s.cache.Get(store.CollectionEmployees))
	summary := Summary{Rows: make([]SummaryRow, 0, len(employees))}
	for _, e := range employees {
		summary.Rows = append(summary.Rows, SummaryRow{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Department:   e.Department,
			AnnualSalary: e.Salary,
			MonthlyGross: MonthlyGross(e),
		})
	}
	summary.Total = TotalPayroll(employees)
	return summary, nil
}

// PayslipFor builds the payslip for one employee. Admins may read any
// payslip; everyone else only their own.
func (s *Service) PayslipFor(sess session.Session, employeeID string, month string) (Payslip, error) {
	isSelf := sess.Resolved() && sess.Employee.ID == employeeID
	if sess.Role != employee.RoleAdmin && !isSelf {
		return Payslip{}, authz.ErrForbidden
	}

	doc, ok := s.cache.Lookup(store.CollectionEmployees, employeeID)
	if !ok {
		return Payslip{}, employee.ErrEmployeeNotFound
	}
	return BuildPayslip(codec.Employee(doc), month), nil
}
