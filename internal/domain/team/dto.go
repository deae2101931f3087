package team

import "github.com/officeflow/officeflow-backend-go/internal/pkg/validator"

type CreateTeamRequest struct {
	Name     string   `json:"name"`
	TeamLead string   `json:"team_lead"`
	Members  []string `json:"members"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	// The lead owns the team's authorization scope and is conventionally
	// excluded from the member list.
	if !validator.IsEmpty(r.TeamLead) && validator.IsInSlice(r.TeamLead, r.Members) {
		errs = append(errs, validator.ValidationError{
			Field:   "members",
			Message: "team lead must not be listed as a member",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemberRequest struct {
	Name string `json:"name"`
}

func (r *MemberRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type DeleteTeamRequest struct {
	Confirm bool `json:"confirm"`
}

func (r *DeleteTeamRequest) Validate() error {
	if !r.Confirm {
		return validator.ValidationErrors{{
			Field:   "confirm",
			Message: "delete must be confirmed",
		}}
	}
	return nil
}
