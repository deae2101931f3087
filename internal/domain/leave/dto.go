package leave

import (
	"github.com/officeflow/officeflow-backend-go/internal/pkg/validator"
)

// CreateRequestRequest is the payload for submitting a leave request.
// The requester's identity comes from the session, never the payload.
type CreateRequestRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if _, ok := ParseType(r.Type); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Vacation, Sick or Personal",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideRequestRequest carries an approve/reject decision.
type DecideRequestRequest struct {
	Status string `json:"status"`
}

func (r *DecideRequestRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		}}
	}
	return nil
}
