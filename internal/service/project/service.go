package project

import (
	"context"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

type Service struct {
	store store.Store
	cache *store.Cache
}

func NewService(st store.Store, cache *store.Cache) *Service {
	return &Service{store: st, cache: cache}
}

// List returns the projects visible to the session.
func (s *Service) List(sess session.Session) []project.Project {
	projects := codec.Projects(s.cache.Get(store.CollectionProjects))
	teams := codec.Teams(s.cache.Get(store.CollectionTeams))
	return authz.VisibleProjects(sess, projects, teams)
}

// Create adds a project. Admin or manager; status starts at Pending.
// The identity must have a resolved employee record, a provisional role
// alone grants nothing.
func (s *Service) Create(ctx context.Context, sess session.Session, req project.CreateProjectRequest) (string, error) {
	if !sess.Resolved() || !authz.CanMutateProjects(sess.Role) {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	assignees := req.Assignees
	if assignees == nil {
		assignees = []string{}
	}
	fields := map[string]any{
		"title":        req.Title,
		"assignees":    toAnySlice(assignees),
		"assignedTeam": req.AssignedTeam,
		"status":       string(project.StatusPending),
		"deadline":     req.Deadline,
	}
	return s.store.Create(ctx, store.CollectionProjects, fields)
}

// Update edits a project record. Admin or manager.
func (s *Service) Update(ctx context.Context, sess session.Session, id string, req project.UpdateProjectRequest) error {
	if !sess.Resolved() || !authz.CanMutateProjects(sess.Role) {
		return authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if _, ok := s.cache.Lookup(store.CollectionProjects, id); !ok {
		return project.ErrProjectNotFound
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Assignees != nil {
		fields["assignees"] = toAnySlice(*req.Assignees)
	}
	if req.AssignedTeam != nil {
		fields["assignedTeam"] = *req.AssignedTeam
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionProjects, id, fields)
}

// UpdateStatus transitions a project's status. Any user who can see the
// project may move it between any two states; there is no enforced
// ordering.
func (s *Service) UpdateStatus(ctx context.Context, sess session.Session, id string, req project.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, visible := range s.List(sess) {
		if visible.ID == id {
			return s.store.Update(ctx, store.CollectionProjects, id, map[string]any{
				"status": req.Status,
			})
		}
	}

	if _, ok := s.cache.Lookup(store.CollectionProjects, id); !ok {
		return project.ErrProjectNotFound
	}
	return authz.ErrForbidden
}

// Delete removes a project. Admin only, and only with explicit
// confirmation.
func (s *Service) Delete(ctx context.Context, sess session.Session, id string, req project.DeleteProjectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !sess.Resolved() || !authz.CanDeleteProject(sess.Role) {
		return authz.ErrForbidden
	}
	if _, ok := s.cache.Lookup(store.CollectionProjects, id); !ok {
		return project.ErrProjectNotFound
	}
	return s.store.Delete(ctx, store.CollectionProjects, id)
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
