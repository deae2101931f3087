package dashboard

import (
	"errors"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/announcement"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
	"github.com/officeflow/officeflow-backend-go/internal/service/payroll"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

// Kind discriminates the dashboard variant. Admin and manager get their
// own dashboards; everyone else gets the employee one. Pure mapping,
// re-evaluated on every read.
type Kind string

const (
	KindAdmin    Kind = "admin"
	KindManager  Kind = "manager"
	KindEmployee Kind = "employee"
)

type AdminDashboard struct {
	EmployeeCount  int                           `json:"employeeCount"`
	TotalProjects  int                           `json:"totalProjects"`
	ActiveProjects int                           `json:"activeProjects"`
	TotalPayroll   float64                       `json:"totalPayroll"`
	Announcements  []announcement.Announcement   `json:"announcements"`
}

type ManagerDashboard struct {
	Team *team.Team `json:"team,omitempty"`

	// TeamAmbiguous flags the data-integrity violation where several
	// teams name this manager as lead; the dashboard then shows no team
	// rather than guessing.
	TeamAmbiguous bool `json:"teamAmbiguous,omitempty"`

	Members      []employee.Employee `json:"members"`
	TeamProjects []project.Project   `json:"teamProjects"`
	PendingLeave []leave.Request     `json:"pendingLeave"`
}

type EmployeeDashboard struct {
	Employee   *employee.Employee `json:"employee,omitempty"`
	MyProjects []project.Project  `json:"myProjects"`
}

type Dashboard struct {
	Kind     Kind               `json:"kind"`
	Admin    *AdminDashboard    `json:"admin,omitempty"`
	Manager  *ManagerDashboard  `json:"manager,omitempty"`
	Employee *EmployeeDashboard `json:"employee,omitempty"`
}

type Service struct {
	cache *store.Cache
}

func NewService(cache *store.Cache) *Service {
	return &Service{cache: cache}
}

// ForSession assembles the dashboard variant for the acting user.
func (s *Service) ForSession(sess session.Session) Dashboard {
	switch sess.Role {
	case employee.RoleAdmin:
		return Dashboard{Kind: KindAdmin, Admin: s.admin()}
	case employee.RoleManager:
		return Dashboard{Kind: KindManager, Manager: s.manager(sess)}
	default:
		return Dashboard{Kind: KindEmployee, Employee: s.employee(sess)}
	}
}

func (s *Service) admin() *AdminDashboard {
	employees := codec.Employees(s.cache.Get(store.CollectionEmployees))
	projects := codec.Projects(s.cache.Get(store.CollectionProjects))

	active := 0
	for _, p := range projects {
		if !p.Status.IsTerminal() {
			active++
		}
	}

	announcements := codec.Announcements(s.cache.Get(store.CollectionAnnouncements))

	return &AdminDashboard{
		EmployeeCount:  len(employees),
		TotalProjects:  len(projects),
		ActiveProjects: active,
		TotalPayroll:   payroll.TotalPayroll(employees),
		Announcements:  announcements,
	}
}

func (s *Service) manager(sess session.Session) *ManagerDashboard {
	teams := codec.Teams(s.cache.Get(store.CollectionTeams))
	projects := codec.Projects(s.cache.Get(store.CollectionProjects))
	requests := codec.LeaveRequests(s.cache.Get(store.CollectionLeaveRequests))
	employees := codec.Employees(s.cache.Get(store.CollectionEmployees))

	d := &ManagerDashboard{
		Members:      []employee.Employee{},
		TeamProjects: authz.VisibleProjects(sess, projects, teams),
		PendingLeave: authz.VisibleLeaveRequestsForApproval(sess, teams, requests),
	}

	owned, err := authz.ResolveOwnedTeam(teams, sess.Employee)
	if errors.Is(err, team.ErrAmbiguousTeamLead) {
		d.TeamAmbiguous = true
		return d
	}
	if owned == nil {
		return d
	}

	d.Team = owned
	for _, e := range employees {
		if owned.HasMember(e.Name) {
			d.Members = append(d.Members, e)
		}
	}
	return d
}

func (s *Service) employee(sess session.Session) *EmployeeDashboard {
	projects := codec.Projects(s.cache.Get(store.CollectionProjects))
	teams := codec.Teams(s.cache.Get(store.CollectionTeams))

	return &EmployeeDashboard{
		Employee:   sess.Employee,
		MyProjects: authz.VisibleProjects(sess, projects, teams),
	}
}
