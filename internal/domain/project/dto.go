package project

import "github.com/officeflow/officeflow-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Assignees    []string `json:"assignees"`
	AssignedTeam string   `json:"assigned_team"`
	Deadline     string   `json:"deadline"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if !validator.IsEmpty(r.Deadline) {
		if _, ok := validator.IsValidDate(r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProjectRequest is a full edit of a project record except its
// status, which has its own transition endpoint.
type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty"`
	Assignees    *[]string `json:"assignees,omitempty"`
	AssignedTeam *string   `json:"assigned_team,omitempty"`
	Deadline     *string   `json:"deadline,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Deadline != nil && !validator.IsEmpty(*r.Deadline) {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if _, ok := ParseStatus(r.Status); !ok {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be Pending, In Progress, Completed or Done",
		}}
	}
	return nil
}

// DeleteProjectRequest carries the explicit confirmation gate required
// before any delete is issued.
type DeleteProjectRequest struct {
	Confirm bool `json:"confirm"`
}

func (r *DeleteProjectRequest) Validate() error {
	if !r.Confirm {
		return validator.ValidationErrors{{
			Field:   "confirm",
			Message: "delete must be confirmed",
		}}
	}
	return nil
}
