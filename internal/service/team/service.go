package team

import (
	"context"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
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

// List returns the teams visible to the session.
func (s *Service) List(sess session.Session) []team.Team {
	teams := codec.Teams(s.cache.Get(store.CollectionTeams))
	return authz.VisibleTeams(sess, teams)
}

// Create adds a team. Admin only. A lead may own at most one team, so a
// duplicate lead is rejected here rather than disambiguated at read
// time.
func (s *Service) Create(ctx context.Context, sess session.Session, req team.CreateTeamRequest) (string, error) {
	if !sess.Resolved() || !authz.CanManageTeams(sess.Role) {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	if req.TeamLead != "" {
		for _, t := range codec.Teams(s.cache.Get(store.CollectionTeams)) {
			if t.TeamLead == req.TeamLead {
				return "", team.ErrDuplicateTeamLead
			}
		}
	}

	members := req.Members
	if members == nil {
		members = []string{}
	}
	fields := map[string]any{
		"name":     req.Name,
		"teamLead": req.TeamLead,
		"members":  toAnySlice(members),
	}
	return s.store.Create(ctx, store.CollectionTeams, fields)
}

// Delete removes a team. Admin only, with explicit confirmation.
func (s *Service) Delete(ctx context.Context, sess session.Session, id string, req team.DeleteTeamRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !sess.Resolved() || !authz.CanManageTeams(sess.Role) {
		return authz.ErrForbidden
	}
	if _, ok := s.cache.Lookup(store.CollectionTeams, id); !ok {
		return team.ErrTeamNotFound
	}
	return s.store.Delete(ctx, store.CollectionTeams, id)
}

// AddMember appends a member to a team. Admin only.
func (s *Service) AddMember(ctx context.Context, sess session.Session, id string, req team.MemberRequest) error {
	if !sess.Resolved() || !authz.CanManageTeams(sess.Role) {
		return authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}

	doc, ok := s.cache.Lookup(store.CollectionTeams, id)
	if !ok {
		return team.ErrTeamNotFound
	}
	current := codec.Team(doc)
	if current.HasMember(req.Name) {
		return team.ErrMemberAlreadyInTeam
	}

	members := append(current.Members, req.Name)
	return s.store.Update(ctx, store.CollectionTeams, id, map[string]any{
		"members": toAnySlice(members),
	})
}

// RemoveMember drops a member from a team. Admin only.
func (s *Service) RemoveMember(ctx context.Context, sess session.Session, id string, req team.MemberRequest) error {
	if !sess.Resolved() || !authz.CanManageTeams(sess.Role) {
		return authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}

	doc, ok := s.cache.Lookup(store.CollectionTeams, id)
	if !ok {
		return team.ErrTeamNotFound
	}
	current := codec.Team(doc)
	if !current.HasMember(req.Name) {
		return team.ErrMemberNotInTeam
	}

	members := make([]string, 0, len(current.Members))
	for _, m := range current.Members {
		if m != req.Name {
			members = append(members, m)
		}
	}
	return s.store.Update(ctx, store.CollectionTeams, id, map[string]any{
		"members": toAnySlice(members),
	})
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
