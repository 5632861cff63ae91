package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trashtocash/admin-api/pkg/model"
)

type mockStore struct {
	users   map[string]model.RawDocument
	listErr error
	role    string
	nextID  string
	deleted []string
}

func (m *mockStore) ListUsersByRole(ctx context.Context, role string) ([]model.RawDocument, error) {
	m.role = role
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.RawDocument
	for _, id := range []string{"u1", "u2", "u3"} {
		if doc, ok := m.users[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *mockStore) GetUser(ctx context.Context, id string) (model.RawDocument, error) {
	doc, ok := m.users[id]
	if !ok {
		return model.RawDocument{}, model.ErrNotFound
	}
	return doc, nil
}

func (m *mockStore) CreateUser(ctx context.Context, fields map[string]any) (string, error) {
	m.users[m.nextID] = model.RawDocument{ID: m.nextID, Data: fields}
	return m.nextID, nil
}

func (m *mockStore) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	doc, ok := m.users[id]
	if !ok {
		return model.ErrNotFound
	}
	for k, v := range fields {
		doc.Data[k] = v
	}
	return nil
}

func (m *mockStore) DeleteUsers(ctx context.Context, ids []string) error {
	m.deleted = append(m.deleted, ids...)
	return nil
}

func newStore() *mockStore {
	created := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	return &mockStore{
		nextID: "u9",
		users: map[string]model.RawDocument{
			"u1": {ID: "u1", Data: map[string]any{
				"firstName": "Ana", "lastName": "Lopez", "email": "ana@example.com",
				"phone": "555-0100", "createdAt": created, "userId": "auth-ana",
			}},
			"u2": {ID: "u2", Data: map[string]any{"firstName": "", "lastName": ""}},
			"u3": {ID: "u3", Data: map[string]any{"firstName": "Bo", "status": int64(1)}},
		},
	}
}

func TestEmployeeFromDocument(t *testing.T) {
	store := newStore()
	e := EmployeeFromDocument(store.users["u1"], time.UTC)
	assert.Equal(t, model.Employee{
		ID:        "auth-ana",
		DocID:     "u1",
		Name:      "Ana Lopez",
		Email:     "ana@example.com",
		Phone:     "555-0100",
		Warehouse: "N/A",
		Date:      "11/2/2025",
		Status:    model.EmployeeShift,
	}, e)

	e = EmployeeFromDocument(store.users["u2"], time.UTC)
	assert.Equal(t, "u2", e.ID)
	assert.Equal(t, "Unknown", e.Name)
	assert.Equal(t, "N/A", e.Date)
}

func TestSearchEmployees(t *testing.T) {
	store := newStore()
	svc := NewService(store, "", time.UTC)

	all, err := svc.SearchEmployees(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "employ", store.role)

	got, err := svc.SearchEmployees(context.Background(), "LOP", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Lopez", got[0].Name)

	absent, err := ParseStatusFilter("absent")
	require.NoError(t, err)
	got, err = svc.SearchEmployees(context.Background(), "", absent)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bo", got[0].Name)
}

func TestSearchEmployeesStoreError(t *testing.T) {
	store := newStore()
	store.listErr = errors.New("offline")
	_, err := NewService(store, "", nil).SearchEmployees(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestParseEmployeeStatusFilter(t *testing.T) {
	got, err := ParseStatusFilter("all")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseStatusFilter("vacation")
	assert.Error(t, err)
}

func TestCreateUpdateDeleteEmployee(t *testing.T) {
	store := newStore()
	svc := NewService(store, "employ", time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) }

	created, err := svc.CreateEmployee(context.Background(), model.EmployeeInput{
		Name: "Cara van Dijk", Email: "cara@example.com", Warehouse: "North",
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", created.ID)
	assert.Equal(t, "Cara van Dijk", created.Name)
	assert.Equal(t, "North", created.Warehouse)
	assert.Equal(t, "1/5/2026", created.Date)
	assert.Equal(t, "employ", store.users["u9"].Data["role"])
	assert.Equal(t, "Cara", store.users["u9"].Data["firstName"])
	assert.Equal(t, "van Dijk", store.users["u9"].Data["lastName"])

	updated, err := svc.UpdateEmployee(context.Background(), "u3", model.EmployeeInput{Name: "Bo Chen", Status: model.EmployeeBreak})
	require.NoError(t, err)
	assert.Equal(t, "Bo Chen", updated.Name)
	assert.Equal(t, model.EmployeeBreak, updated.Status)

	_, err = svc.UpdateEmployee(context.Background(), "missing", model.EmployeeInput{})
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, svc.DeleteEmployees(context.Background(), []string{"u1", "u2"}))
	require.NoError(t, svc.DeleteEmployees(context.Background(), nil))
	assert.Equal(t, []string{"u1", "u2"}, store.deleted)
}

func TestListedIDsAddressTheSameEmployee(t *testing.T) {
	store := newStore()
	svc := NewService(store, "", time.UTC)
	ctx := context.Background()

	list, err := svc.Employees(ctx)
	require.NoError(t, err)
	require.Equal(t, "auth-ana", list[0].ID)
	require.Equal(t, "u1", list[0].DocID)

	updated, err := svc.UpdateEmployee(ctx, list[0].ID, model.EmployeeInput{Name: "Ana Ruiz", Warehouse: "East"})
	require.NoError(t, err)
	assert.Equal(t, "auth-ana", updated.ID)
	assert.Equal(t, "Ana Ruiz", updated.Name)
	assert.Equal(t, "Ruiz", store.users["u1"].Data["lastName"])

	require.NoError(t, svc.DeleteEmployees(ctx, []string{list[0].ID, list[2].ID}))
	assert.Equal(t, []string{"u1", "u3"}, store.deleted)
}

func TestDeleteEmployeesUnknownID(t *testing.T) {
	store := newStore()
	err := NewService(store, "", time.UTC).DeleteEmployees(context.Background(), []string{"u1", "ghost"})
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, store.deleted)
}

func TestProfile(t *testing.T) {
	store := newStore()
	store.users["admin-1"] = model.RawDocument{ID: "admin-1", Data: map[string]any{
		"firstName": "Root", "role": "admin", "email": "root@example.com",
	}}
	svc := NewService(store, "", time.UTC)

	p, err := svc.Profile(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", p.RoleLabel)
	assert.Equal(t, "admin-1", p.UserID)
	assert.Equal(t, "N/A", p.CreatedAt)

	p, err = svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Employee", p.RoleLabel)
	assert.Equal(t, "auth-ana", p.UserID)
	assert.Equal(t, "11/2/2025", p.CreatedAt)

	_, err = svc.Profile(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "User", RoleLabel(""))
	assert.Equal(t, "auditor", RoleLabel("auditor"))
}

func TestMaterials(t *testing.T) {
	list := Materials()
	require.Len(t, list, 3)
	for _, m := range list {
		assert.Equal(t, model.MaterialActive, m.Status)
	}
}
