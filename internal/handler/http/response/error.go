package response

import (
	"errors"
	"net/http"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/asset"
	"github.com/officeflow/officeflow-backend-go/internal/domain/auth"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/validator"
	"github.com/officeflow/officeflow-backend-go/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authorization
	case errors.Is(err, authz.ErrForbidden):
		Forbidden(w, "Insufficient permissions")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrInvalidStatus):
		BadRequest(w, "Invalid project status", nil)

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrDuplicateTeamLead):
		Conflict(w, "Employee already leads another team")
	case errors.Is(err, team.ErrAmbiguousTeamLead):
		Conflict(w, "Multiple teams share the same lead")
	case errors.Is(err, team.ErrMemberAlreadyInTeam):
		Conflict(w, "Employee is already a team member")
	case errors.Is(err, team.ErrMemberNotInTeam):
		BadRequest(w, "Employee is not a team member", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be Approved or Rejected", nil)

	// Asset domain errors
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, asset.ErrAlreadyAssigned):
		Conflict(w, "Asset is already assigned")
	case errors.Is(err, asset.ErrNotAssigned):
		Conflict(w, "Asset is not assigned")

	// Store errors
	case errors.Is(err, store.ErrPermissionDenied):
		Forbidden(w, "Permission denied by data store")
	case errors.Is(err, store.ErrNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, store.ErrUnavailable):
		ServiceUnavailable(w, "Data store unavailable")
	case errors.Is(err, store.ErrValidationFailed):
		ValidationError(w, nil)
	case errors.Is(err, store.ErrUnknownCollection):
		BadRequest(w, "Unknown collection", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
