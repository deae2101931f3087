package asset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/asset"
	"github.com/officeflow/officeflow-backend-go/internal/domain/employee"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

func syncCache(t *testing.T, st store.Store, cache *store.Cache, collections ...string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, name := range collections {
		ch, _, err := st.Subscribe(ctx, name)
		require.NoError(t, err)
		cache.Apply(<-ch)
	}
}

func itSession() session.Session {
	e := employee.Employee{ID: "e4", Name: "Dana", Email: "dana@officeflow.io", Role: employee.RoleITSupport}
	return session.Session{Email: e.Email, Role: e.Role, Employee: &e}
}

func plainSession() session.Session {
	e := employee.Employee{ID: "e2", Name: "Bob", Email: "bob@officeflow.io", Role: employee.RoleEmployee}
	return session.Session{Email: e.Email, Role: e.Role, Employee: &e}
}

func newFixture(t *testing.T) (*Service, store.Store, *store.Cache) {
	st := store.NewMemoryStore()
	cache := store.NewCache()
	svc := NewService(st, cache)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return svc, st, cache
}

func createLaptop(t *testing.T, svc *Service, st store.Store, cache *store.Cache) string {
	t.Helper()
	id, err := svc.Create(context.Background(), itSession(), asset.CreateAssetRequest{
		Name:          "MacBook Pro",
		Kind:          "Hardware",
		Category:      "Laptop",
		SerialNumber:  "C02XX01",
		PurchaseDate:  "2025-01-15",
		PurchasePrice: 2500,
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionAssets)
	return id
}

func TestCreateStartsAvailable(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	doc, ok := cache.Lookup(store.CollectionAssets, id)
	require.True(t, ok)
	a := codec.Asset(doc)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	assert.Empty(t, a.AssignedTo)
}

func TestAssignSetsStatusAndOpensHistory(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	err := svc.Assign(context.Background(), itSession(), id, asset.AssignAssetRequest{
		EmployeeID: "e2",
		Notes:      "onboarding kit",
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionAssets, store.CollectionAssetAssignments)

	doc, _ := cache.Lookup(store.CollectionAssets, id)
	a := codec.Asset(doc)
	assert.Equal(t, asset.StatusAssigned, a.Status)
	assert.Equal(t, "e2", a.AssignedTo)

	history, err := svc.History(itSession(), id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "e2", history[0].EmployeeID)
	assert.Empty(t, history[0].ReturnDate)
}

func TestAssignRejectsAlreadyAssigned(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	require.NoError(t, svc.Assign(context.Background(), itSession(), id, asset.AssignAssetRequest{EmployeeID: "e2"}))
	syncCache(t, st, cache, store.CollectionAssets)

	err := svc.Assign(context.Background(), itSession(), id, asset.AssignAssetRequest{EmployeeID: "e3"})
	assert.ErrorIs(t, err, asset.ErrAlreadyAssigned)
}

func TestUnassignClearsAndClosesHistory(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	require.NoError(t, svc.Assign(context.Background(), itSession(), id, asset.AssignAssetRequest{EmployeeID: "e2"}))
	syncCache(t, st, cache, store.CollectionAssets, store.CollectionAssetAssignments)

	require.NoError(t, svc.Unassign(context.Background(), itSession(), id))
	syncCache(t, st, cache, store.CollectionAssets, store.CollectionAssetAssignments)

	doc, _ := cache.Lookup(store.CollectionAssets, id)
	a := codec.Asset(doc)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	assert.Empty(t, a.AssignedTo)

	history, err := svc.History(itSession(), id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.NotEmpty(t, history[0].ReturnDate)
}

func TestUnassignRequiresAssignment(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	err := svc.Unassign(context.Background(), itSession(), id)
	assert.ErrorIs(t, err, asset.ErrNotAssigned)
}

func TestUpdateNeverSetsAssignedStatus(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	assigned := string(asset.StatusAssigned)
	err := svc.Update(context.Background(), itSession(), id, asset.UpdateAssetRequest{Status: &assigned})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionAssets)

	// Assignment only happens through Assign, which also sets
	// assignedTo and opens a history record.
	doc, _ := cache.Lookup(store.CollectionAssets, id)
	assert.Equal(t, asset.StatusAvailable, codec.Asset(doc).Status)
}

func TestAddMaintenanceRecordsAgainstAsset(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	recordID, err := svc.AddMaintenance(context.Background(), itSession(), id, asset.AddMaintenanceRequest{
		Date:        "2026-08-01",
		Type:        "Repair",
		Cost:        120.50,
		Description: "Keyboard replacement",
		Technician:  "TechServe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, recordID)
	syncCache(t, st, cache, store.CollectionMaintenance)

	records, err := svc.Maintenance(itSession(), id)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, asset.MaintenanceRepair, records[0].Type)
	assert.InDelta(t, 120.50, records[0].Cost, 1e-9)
}

func TestAssetAccessRequiresManagingRole(t *testing.T) {
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	_, err := svc.List(plainSession())
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Assign(context.Background(), plainSession(), id, asset.AssignAssetRequest{EmployeeID: "e2"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = svc.History(plainSession(), id)
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestUnresolvedIdentityCannotMutate(t *testing.T) {
	ctx := context.Background()
	svc, st, cache := newFixture(t)
	id := createLaptop(t, svc, st, cache)

	// A provisional admin role without an employee record gets no write
	// access to assets.
	sess := session.Session{Email: "new.admin@officeflow.io", Role: employee.RoleAdmin}

	_, err := svc.Create(ctx, sess, asset.CreateAssetRequest{
		Name:          "Monitor",
		Kind:          "Hardware",
		Category:      "Display",
		SerialNumber:  "MON-1",
		PurchaseDate:  "2025-06-01",
		PurchasePrice: 400,
	})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Assign(ctx, sess, id, asset.AssignAssetRequest{EmployeeID: "e2"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Unassign(ctx, sess, id)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	err = svc.Update(ctx, sess, id, asset.UpdateAssetRequest{})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = svc.AddMaintenance(ctx, sess, id, asset.AddMaintenanceRequest{})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestListAnnotatesCurrentValue(t *testing.T) {
	svc, st, cache := newFixture(t)

	rate := 20.0
	_, err := svc.Create(context.Background(), itSession(), asset.CreateAssetRequest{
		Name:             "ThinkPad",
		Kind:             "Hardware",
		Category:         "Laptop",
		SerialNumber:     "TP-7",
		PurchaseDate:     "2025-08-31",
		PurchasePrice:    1000,
		DepreciationRate: &rate,
	})
	require.NoError(t, err)
	syncCache(t, st, cache, store.CollectionAssets)

	views, err := svc.List(itSession())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Less(t, views[0].CurrentValue, views[0].PurchasePrice)
	assert.Greater(t, views[0].CurrentValue, 0.0)
}
