package payroll

import "github.com/officeflow/officeflow-backend-go/internal/domain/employee"

// Fixed constants of the payslip design. These are not configurable:
// basic, HRA and allowances partition the monthly gross exactly.
const (
	BasicShare      = 0.5
	HRAShare        = 0.2
	AllowancesShare = 0.3

	PFRate  = 0.12 // of basic
	TaxRate = 0.10 // of monthly gross
)

// MonthlyGross is one twelfth of the annual salary.
func MonthlyGross(e employee.Employee) float64 {
	return e.Salary / 12
}

// TotalPayroll sums the monthly gross across employees.
func TotalPayroll(employees []employee.Employee) float64 {
	var total float64
	for _, e := range employees {
		total += MonthlyGross(e)
	}
	return total
}

// Payslip is a derived value, recomputed on every read and never
// persisted.
type Payslip struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Month        string  `json:"month"`
	Gross        float64 `json:"gross"`
	Basic        float64 `json:"basic"`
	HRA          float64 `json:"hra"`
	Allowances   float64 `json:"allowances"`
	PF           float64 `json:"pf"`
	Tax          float64 `json:"tax"`
	Deductions   float64 `json:"deductions"`
	NetPay       float64 `json:"netPay"`
}

// BuildPayslip breaks one employee's monthly gross into its components.
func BuildPayslip(e employee.Employee, month string) Payslip {
	gross := MonthlyGross(e)
	basic := gross * BasicShare
	hra := gross * HRAShare
	allowances := gross * AllowancesShare
	pf := basic * PFRate
	tax := gross * TaxRate

	return Payslip{
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		Month:        month,
		Gross:        gross,
		Basic:        basic,
		HRA:          hra,
		Allowances:   allowances,
		PF:           pf,
		Tax:          tax,
		Deductions:   pf + tax,
		NetPay:       gross - pf - tax,
	}
}
