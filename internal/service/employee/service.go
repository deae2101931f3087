package employee

import (
	"context"
	"time"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
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

// List returns all employees. Available to the roles that can open the
// employees screen.
func (s *Service) List(sess session.Session) ([]employee.Employee, error) {
	if !authz.CanOpenSection(sess.Role, authz.NavEmployees) {
		return nil, authz.ErrForbidden
	}
	return codec.Employees(s.cache.Get(store.CollectionEmployees)), nil
}

// Get returns one employee record. Admin and manager may read any
// record; everyone else only their own.
func (s *Service) Get(sess session.Session, id string) (employee.Employee, error) {
	doc, ok := s.cache.Lookup(store.CollectionEmployees, id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp := codec.Employee(doc)

	if authz.CanOpenSection(sess.Role, authz.NavEmployees) {
		return emp, nil
	}
	if sess.Resolved() && sess.Employee.ID == id {
		return emp, nil
	}
	return employee.Employee{}, authz.ErrForbidden
}

// Create adds an employee record. Admin only.
func (s *Service) Create(ctx context.Context, sess session.Session, req employee.CreateEmployeeRequest) (string, error) {
	if !sess.Resolved() || !authz.CanMutateEmployees(sess.Role) {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	// Email is the identity key and must stay unique.
	for _, e := range codec.Employees(s.cache.Get(store.CollectionEmployees)) {
		if e.Email == req.Email {
			return "", employee.ErrEmailExists
		}
	}

	fields := map[string]any{
		"name":       req.Name,
		"employeeId": req.EmployeeCode,
		"role":       req.Role,
		"email":      req.Email,
		"salary":     req.Salary,
		"department": req.Department,
		"joinedDate": codec.Timestamp(time.Now()),
	}
	return s.store.Create(ctx, store.CollectionEmployees, fields)
}

// Delete removes an employee record. Admin only, with explicit
// confirmation.
func (s *Service) Delete(ctx context.Context, sess session.Session, id string, req employee.DeleteEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !sess.Resolved() || !authz.CanMutateEmployees(sess.Role) {
		return authz.ErrForbidden
	}
	if _, ok := s.cache.Lookup(store.CollectionEmployees, id); !ok {
		return employee.ErrEmployeeNotFound
	}
	return s.store.Delete(ctx, store.CollectionEmployees, id)
}

// UpdateAccount changes role or department. Admin only.
func (s *Service) UpdateAccount(ctx context.Context, sess session.Session, id string, req employee.UpdateAccountRequest) error {
	if !sess.Resolved() || !authz.CanMutateEmployees(sess.Role) {
		return authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if _, ok := s.cache.Lookup(store.CollectionEmployees, id); !ok {
		return employee.ErrEmployeeNotFound
	}

	fields := map[string]any{}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionEmployees, id, fields)
}

// UpdateContact lets the acting employee edit their own contact info.
func (s *Service) UpdateContact(ctx context.Context, sess session.Session, req employee.UpdateContactRequest) error {
	if !sess.Resolved() {
		return authz.ErrForbidden
	}

	contact := map[string]any{}
	current := sess.Employee.ContactInfo
	contact["phone"] = current.Phone
	contact["address"] = current.Address
	if req.Phone != nil {
		contact["phone"] = *req.Phone
	}
	if req.Address != nil {
		contact["address"] = *req.Address
	}
	if req.EmergencyContact != nil {
		contact["emergencyContact"] = map[string]any{
			"name":     req.EmergencyContact.Name,
			"phone":    req.EmergencyContact.Phone,
			"relation": req.EmergencyContact.Relation,
		}
	} else if current.EmergencyContact != nil {
		contact["emergencyContact"] = map[string]any{
			"name":     current.EmergencyContact.Name,
			"phone":    current.EmergencyContact.Phone,
			"relation": current.EmergencyContact.Relation,
		}
	}

	return s.store.Update(ctx, store.CollectionEmployees, sess.Employee.ID, map[string]any{
		"contactInfo": contact,
	})
}

// UpdateMetrics sets performance metrics. Admin only. The merged record
// is returned so the caller can update its local view immediately; this
// is the single optimistic-merge case, everywhere else the next snapshot
// is the source of truth.
func (s *Service) UpdateMetrics(ctx context.Context, sess session.Session, id string, req employee.UpdateMetricsRequest) (employee.Employee, error) {
	if !sess.Resolved() || !authz.CanMutateEmployees(sess.Role) {
		return employee.Employee{}, authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	doc, ok := s.cache.Lookup(store.CollectionEmployees, id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	merged := codec.Employee(doc)

	fields := map[string]any{}
	if req.MonthlyTarget != nil {
		fields["monthlyTarget"] = *req.MonthlyTarget
		merged.MonthlyTarget = *req.MonthlyTarget
	}
	if req.TasksCompleted != nil {
		fields["tasksCompleted"] = *req.TasksCompleted
		merged.TasksCompleted = *req.TasksCompleted
	}
	if req.EfficiencyScore != nil {
		fields["efficiencyScore"] = *req.EfficiencyScore
		merged.EfficiencyScore = *req.EfficiencyScore
	}
	if req.OnTimeScore != nil {
		fields["onTimeScore"] = *req.OnTimeScore
		merged.OnTimeScore = *req.OnTimeScore
	}
	if len(fields) == 0 {
		return merged, nil
	}

	if err := s.store.Update(ctx, store.CollectionEmployees, id, fields); err != nil {
		return employee.Employee{}, err
	}
	return merged, nil
}
