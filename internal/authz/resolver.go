// Package authz computes visibility and permissions from the acting
// session and the already-loaded collection snapshots. Every function is
// pure: no store access, no ambient state. When the acting identity has
// no employee record yet (the race between the identity callback and the
// employees snapshot), everything degrades to the most restrictive
// result instead of failing.
package authz

import (
	"errors"

	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
)

// ErrForbidden is returned by controllers when the session lacks the
// permission for a mutation.
var ErrForbidden = errors.New("insufficient permissions")

type NavSection string

const (
	NavDashboard NavSection = "dashboard"
	NavUsers     NavSection = "users"
	NavEmployees NavSection = "employees"
	NavPayroll   NavSection = "payroll"
	NavTeams     NavSection = "teams"
	NavProjects  NavSection = "projects"
	NavAssets    NavSection = "assets"
	NavLeave     NavSection = "leave"
	NavProfile   NavSection = "profile"
)

// navSections maps each role to its visible console sections.
var navSections = map[employee.Role][]NavSection{
	employee.RoleAdmin: {
		NavDashboard, NavUsers, NavEmployees, NavPayroll,
		NavTeams, NavProjects, NavAssets, NavLeave, NavProfile,
	},
	employee.RoleManager: {
		NavDashboard, NavEmployees, NavTeams, NavProjects,
		NavAssets, NavLeave, NavProfile,
	},
	employee.RoleEmployee: {
		NavDashboard, NavLeave, NavProfile,
	},
	employee.RoleITSupport: {
		NavDashboard, NavAssets, NavLeave, NavProfile,
	},
}

// VisibleNavSections returns the console sections a role may open.
// Unknown roles see nothing.
func VisibleNavSections(role employee.Role) []NavSection {
	sections, ok := navSections[role]
	if !ok {
		return nil
	}
	out := make([]NavSection, len(sections))
	copy(out, sections)
	return out
}

// CanOpenSection reports whether a role may open a single section.
func CanOpenSection(role employee.Role, section NavSection) bool {
	for _, s := range navSections[role] {
		if s == section {
			return true
		}
	}
	return false
}

// ResolveOwnedTeam finds the unique team led by the acting employee.
// Multiple teams naming the same lead is a data-integrity violation and
// is flagged, not silently resolved to the first match.
func ResolveOwnedTeam(teams []team.Team, actor *employee.Employee) (*team.Team, error) {
	if actor == nil {
		return nil, nil
	}
	var owned *team.Team
	for i := range teams {
		if teams[i].TeamLead == actor.Name {
			if owned != nil {
				return nil, team.ErrAmbiguousTeamLead
			}
			owned = &teams[i]
		}
	}
	return owned, nil
}

// VisibleProjects filters projects for the session. Admin sees all;
// everyone else sees a project iff they are assigned to it or lead the
// team it belongs to.
func VisibleProjects(s session.Session, projects []project.Project, teams []team.Team) []project.Project {
	if !s.Resolved() {
		return nil
	}
	if s.Role == employee.RoleAdmin {
		out := make([]project.Project, len(projects))
		copy(out, projects)
		return out
	}

	name := s.Employee.Name
	var out []project.Project
	for _, p := range projects {
		if assigneeOf(p, name) || leadsProjectTeam(p, teams, name) {
			out = append(out, p)
		}
	}
	return out
}

func assigneeOf(p project.Project, name string) bool {
	for _, a := range p.Assignees {
		if a == name {
			return true
		}
	}
	return false
}

// leadsProjectTeam resolves the project's team reference; an unresolved
// reference reads as absent.
func leadsProjectTeam(p project.Project, teams []team.Team, name string) bool {
	if p.AssignedTeam == "" {
		return false
	}
	for _, t := range teams {
		if t.ID == p.AssignedTeam || t.Name == p.AssignedTeam {
			return t.TeamLead == name
		}
	}
	return false
}

// VisibleTeams filters teams for the session. Admin sees all; everyone
// else sees the teams they lead or belong to.
func VisibleTeams(s session.Session, teams []team.Team) []team.Team {
	if !s.Resolved() {
		return nil
	}
	if s.Role == employee.RoleAdmin {
		out := make([]team.Team, len(teams))
		copy(out, teams)
		return out
	}

	name := s.Employee.Name
	var out []team.Team
	for _, t := range teams {
		if t.TeamLead == name || t.HasMember(name) {
			out = append(out, t)
		}
	}
	return out
}

// VisibleLeaveRequestsForApproval returns the pending requests the
// session may decide. Admin sees every pending request; a manager sees
// pending requests from their owned team's members; everyone else sees
// none. An ambiguous team lead yields an empty set rather than a guess.
func VisibleLeaveRequestsForApproval(s session.Session, teams []team.Team, requests []leave.Request) []leave.Request {
	if !s.Resolved() {
		return nil
	}

	switch s.Role {
	case employee.RoleAdmin:
		var out []leave.Request
		for _, r := range requests {
			if r.Status == leave.StatusPending {
				out = append(out, r)
			}
		}
		return out

	case employee.RoleManager:
		owned, err := ResolveOwnedTeam(teams, s.Employee)
		if err != nil || owned == nil {
			return nil
		}
		var out []leave.Request
		for _, r := range requests {
			if r.Status == leave.StatusPending && owned.HasMember(r.EmployeeName) {
				out = append(out, r)
			}
		}
		return out
	}

	return nil
}

// OwnLeaveRequests returns the session's own request history.
func OwnLeaveRequests(s session.Session, requests []leave.Request) []leave.Request {
	if !s.Resolved() {
		return nil
	}
	var out []leave.Request
	for _, r := range requests {
		if r.EmployeeID == s.Employee.ID {
			out = append(out, r)
		}
	}
	return out
}

// CanApprove reports whether a role may decide leave requests.
func CanApprove(role employee.Role) bool {
	return role == employee.RoleAdmin || role == employee.RoleManager
}

// CanMutateEmployees reports whether a role may create or delete
// employee records.
func CanMutateEmployees(role employee.Role) bool {
	return role == employee.RoleAdmin
}

// CanMutateProjects reports whether a role may create or edit projects.
func CanMutateProjects(role employee.Role) bool {
	return role == employee.RoleAdmin || role == employee.RoleManager
}

// CanDeleteProject is admin only: managers may create and edit projects
// but never delete them.
func CanDeleteProject(role employee.Role) bool {
	return role == employee.RoleAdmin
}

// CanManageTeams reports whether a role may create or delete teams and
// change membership.
func CanManageTeams(role employee.Role) bool {
	return role == employee.RoleAdmin
}

// CanPostAnnouncements reports whether a role may post announcements.
func CanPostAnnouncements(role employee.Role) bool {
	return role == employee.RoleAdmin
}

// CanViewPayroll reports whether a role may open the payroll screen.
func CanViewPayroll(role employee.Role) bool {
	return role == employee.RoleAdmin
}

// CanManageAssets reports whether a role may mutate assets.
func CanManageAssets(role employee.Role) bool {
	return role == employee.RoleAdmin || role == employee.RoleManager || role == employee.RoleITSupport
}
