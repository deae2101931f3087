package team

import "errors"

var (
	ErrTeamNotFound = errors.New("team not found")

	// ErrDuplicateTeamLead enforces the one-team-per-lead invariant at
	// creation time.
	ErrDuplicateTeamLead = errors.New("employee already leads another team")

	// ErrAmbiguousTeamLead flags a data-integrity violation where more
	// than one team names the same lead. Resolvers flag it instead of
	// silently picking a team.
	ErrAmbiguousTeamLead = errors.New("multiple teams share the same lead")

	ErrMemberAlreadyInTeam = errors.New("employee is already a team member")
	ErrMemberNotInTeam     = errors.New("employee is not a team member")
)
