package employee

import "github.com/officeflow/officeflow-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	EmployeeCode string  `json:"employee_id"`
	Role         string  `json:"role"`
	Email        string  `json:"email"`
	Salary       float64 `json:"salary"`
	Department   string  `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin, manager, employee or it_support",
		})
	}

	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAccountRequest changes the role or department of an employee.
// Admin only; serves the user-management screen.
type UpdateAccountRequest struct {
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil {
		if _, ok := ParseRole(*r.Role); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be admin, manager, employee or it_support",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateContactRequest lets an employee edit their own contact info.
type UpdateContactRequest struct {
	Phone            *string           `json:"phone,omitempty"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

// UpdateMetricsRequest sets performance metrics on an employee record.
type UpdateMetricsRequest struct {
	MonthlyTarget   *float64 `json:"monthly_target,omitempty"`
	TasksCompleted  *float64 `json:"tasks_completed,omitempty"`
	EfficiencyScore *float64 `json:"efficiency_score,omitempty"`
	OnTimeScore     *float64 `json:"on_time_score,omitempty"`
}

func (r *UpdateMetricsRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*float64{
		"monthly_target":   r.MonthlyTarget,
		"tasks_completed":  r.TasksCompleted,
		"efficiency_score": r.EfficiencyScore,
		"on_time_score":    r.OnTimeScore,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteEmployeeRequest struct {
	Confirm bool `json:"confirm"`
}

func (r *DeleteEmployeeRequest) Validate() error {
	if !r.Confirm {
		return validator.ValidationErrors{{
			Field:   "confirm",
			Message: "delete must be confirmed",
		}}
	}
	return nil
}
