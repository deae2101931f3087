package leave

import (
	"context"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
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

// Create submits a leave request for the acting employee. Status is
// always Pending on creation regardless of the payload.
func (s *Service) Create(ctx context.Context, sess session.Session, req leave.CreateRequestRequest) (string, error) {
	if !sess.Resolved() {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	fields := map[string]any{
		"employeeId":   sess.Employee.ID,
		"employeeName": sess.Employee.Name,
		"startDate":    req.StartDate,
		"endDate":      req.EndDate,
		"type":         req.Type,
		"reason":       req.Reason,
		"status":       string(leave.StatusPending),
	}
	return s.store.Create(ctx, store.CollectionLeaveRequests, fields)
}

// MyRequests returns the acting employee's own request history.
func (s *Service) MyRequests(sess session.Session) []leave.Request {
	requests := codec.LeaveRequests(s.cache.Get(store.CollectionLeaveRequests))
	return authz.OwnLeaveRequests(sess, requests)
}

// PendingApprovals returns the requests the session may decide.
func (s *Service) PendingApprovals(sess session.Session) []leave.Request {
	teams := codec.Teams(s.cache.Get(store.CollectionTeams))
	requests := codec.LeaveRequests(s.cache.Get(store.CollectionLeaveRequests))
	return authz.VisibleLeaveRequestsForApproval(sess, teams, requests)
}

// Decide transitions a pending request to Approved or Rejected. The
// transition is one-way: a request that already left Pending is never
// re-offered, and a manager may only decide requests from their owned
// team's members.
func (s *Service) Decide(ctx context.Context, sess session.Session, id string, req leave.DecideRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !sess.Resolved() || !authz.CanApprove(sess.Role) {
		return authz.ErrForbidden
	}

	doc, ok := s.cache.Lookup(store.CollectionLeaveRequests, id)
	if !ok {
		return leave.ErrRequestNotFound
	}
	current := codec.LeaveRequest(doc)
	if current.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}

	// The request must be in the session's approval scope.
	for _, visible := range s.PendingApprovals(sess) {
		if visible.ID == id {
			return s.store.Update(ctx, store.CollectionLeaveRequests, id, map[string]any{
				"status": req.Status,
			})
		}
	}
	return authz.ErrForbidden
}
