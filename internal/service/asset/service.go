package asset

import (
	"context"
	"time"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/asset"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

// AssetView is an asset annotated with its derived current value.
type AssetView struct {
	asset.Asset
	CurrentValue float64 `json:"currentValue"`
}

type Service struct {
	store store.Store
	cache *store.Cache
	now   func() time.Time
}

func NewService(st store.Store, cache *store.Cache) *Service {
	return &Service{store: st, cache: cache, now: time.Now}
}

// List returns all assets with their depreciated values. Admin, manager
// and IT support only.
func (s *Service) List(sess session.Session) ([]AssetView, error) {
	if !authz.CanManageAssets(sess.Role) {
		return nil, authz.ErrForbidden
	}

	assets := codec.Assets(s.cache.Get(store.CollectionAssets))
	now := s.now()
	out := make([]AssetView, 0, len(assets))
	for _, a := range assets {
		out = append(out, AssetView{Asset: a, CurrentValue: asset.CurrentValue(a, now)})
	}
	return out, nil
}

// Create registers a new asset, Available by default.
func (s *Service) Create(ctx context.Context, sess session.Session, req asset.CreateAssetRequest) (string, error) {
	if !sess.Resolved() || !authz.CanManageAssets(sess.Role) {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	fields := map[string]any{
		"name":          req.Name,
		"type":          req.Kind,
		"category":      req.Category,
		"serialNumber":  req.SerialNumber,
		"status":        string(asset.StatusAvailable),
		"purchaseDate":  req.PurchaseDate,
		"purchasePrice": req.PurchasePrice,
	}
	if req.WarrantyExpiry != "" {
		fields["warrantyExpiry"] = req.WarrantyExpiry
	}
	if req.DepreciationRate != nil {
		fields["depreciationRate"] = *req.DepreciationRate
	}
	if len(req.Specifications) > 0 {
		specs := make(map[string]any, len(req.Specifications))
		for k, v := range req.Specifications {
			specs[k] = v
		}
		fields["specifications"] = specs
	}
	return s.store.Create(ctx, store.CollectionAssets, fields)
}

// Update edits asset fields. Setting status to Assigned goes through
// Assign, never here.
func (s *Service) Update(ctx context.Context, sess session.Session, id string, req asset.UpdateAssetRequest) error {
	if !sess.Resolved() || !authz.CanManageAssets(sess.Role) {
		return authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if _, ok := s.cache.Lookup(store.CollectionAssets, id); !ok {
		return asset.ErrAssetNotFound
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Status != nil && *req.Status != string(asset.StatusAssigned) {
		fields["status"] = *req.Status
	}
	if req.SerialNumber != nil {
		fields["serialNumber"] = *req.SerialNumber
	}
	if req.WarrantyExpiry != nil {
		fields["warrantyExpiry"] = *req.WarrantyExpiry
	}
	if req.Specifications != nil {
		specs := make(map[string]any, len(req.Specifications))
		for k, v := range req.Specifications {
			specs[k] = v
		}
		fields["specifications"] = specs
	}
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionAssets, id, fields)
}

// Assign hands an asset to an employee: status becomes Assigned,
// assignedTo is set, and an assignment history record is opened. The
// two writes keep the invariant status==Assigned iff assignedTo set.
func (s *Service) Assign(ctx context.Context, sess session.Session, id string, req asset.AssignAssetRequest) error {
	if !sess.Resolved() || !authz.CanManageAssets(sess.Role) {
		return authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}

	doc, ok := s.cache.Lookup(store.CollectionAssets, id)
	if !ok {
		return asset.ErrAssetNotFound
	}
	if codec.Asset(doc).AssignedTo != "" {
		return asset.ErrAlreadyAssigned
	}

	if err := s.store.Update(ctx, store.CollectionAssets, id, map[string]any{
		"status":     string(asset.StatusAssigned),
		"assignedTo": req.EmployeeID,
	}); err != nil {
		return err
	}

	_, err := s.store.Create(ctx, store.CollectionAssetAssignments, map[string]any{
		"assetId":      id,
		"employeeId":   req.EmployeeID,
		"assignedDate": codec.Timestamp(s.now()),
		"notes":        req.Notes,
	})
	return err
}

// Unassign returns an asset: status becomes Available, assignedTo is
// cleared, and the open assignment record gets its return date.
func (s *Service) Unassign(ctx context.Context, sess session.Session, id string) error {
	if !sess.Resolved() || !authz.CanManageAssets(sess.Role) {
		return authz.ErrForbidden
	}

	doc, ok := s.cache.Lookup(store.CollectionAssets, id)
	if !ok {
		return asset.ErrAssetNotFound
	}
	if codec.Asset(doc).AssignedTo == "" {
		return asset.ErrNotAssigned
	}

	if err := s.store.Update(ctx, store.CollectionAssets, id, map[string]any{
		"status":     string(asset.StatusAvailable),
		"assignedTo": nil,
	}); err != nil {
		return err
	}

	// Close the open history entry. Assign blocks double-assignment, so
	// at most one entry per asset is open.
	for _, a := range codec.Assignments(s.cache.Get(store.CollectionAssetAssignments)) {
		if a.AssetID == id && a.ReturnDate == "" {
			return s.store.Update(ctx, store.CollectionAssetAssignments, a.ID, map[string]any{
				"returnDate": codec.Timestamp(s.now()),
			})
		}
	}
	return nil
}

// AddMaintenance records a service event against an asset.
func (s *Service) AddMaintenance(ctx context.Context, sess session.Session, id string, req asset.AddMaintenanceRequest) (string, error) {
	if !sess.Resolved() || !authz.CanManageAssets(sess.Role) {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}
	if _, ok := s.cache.Lookup(store.CollectionAssets, id); !ok {
		return "", asset.ErrAssetNotFound
	}

	return s.store.Create(ctx, store.CollectionMaintenance, map[string]any{
		"assetId":     id,
		"date":        req.Date,
		"type":        req.Type,
		"cost":        req.Cost,
		"description": req.Description,
		"technician":  req.Technician,
	})
}

// History returns the assignment records for one asset.
func (s *Service) History(sess session.Session, id string) ([]asset.Assignment, error) {
	if !authz.CanManageAssets(sess.Role) {
		return nil, authz.ErrForbidden
	}
	var out []asset.Assignment
	for _, a := range codec.Assignments(s.cache.Get(store.CollectionAssetAssignments)) {
		if a.AssetID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

// Maintenance returns the maintenance log for one asset.
func (s *Service) Maintenance(sess session.Session, id string) ([]asset.MaintenanceRecord, error) {
	if !authz.CanManageAssets(sess.Role) {
		return nil, authz.ErrForbidden
	}
	var out []asset.MaintenanceRecord
	for _, m := range codec.MaintenanceRecords(s.cache.Get(store.CollectionMaintenance)) {
		if m.AssetID == id {
			out = append(out, m)
		}
	}
	return out, nil
}
