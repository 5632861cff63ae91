package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

// Store abstracts the users collection.
type Store interface {
	ListUsersByRole(ctx context.Context, role string) ([]model.RawDocument, error)
	GetUser(ctx context.Context, id string) (model.RawDocument, error)
	CreateUser(ctx context.Context, fields map[string]any) (string, error)
	UpdateUser(ctx context.Context, id string, fields map[string]any) error
	DeleteUsers(ctx context.Context, ids []string) error
}

// Service serves the employee table and profile lookups.
type Service struct {
	store Store
	role  string
	loc   *time.Location
	now   func() time.Time
}

func NewService(store Store, role string, loc *time.Location) *Service {
	if role == "" {
		role = roleEmployee
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, role: role, loc: loc, now: time.Now}
}

// Employees loads every user with the employee role.
func (s *Service) Employees(ctx context.Context) ([]model.Employee, error) {
	docs, err := s.store.ListUsersByRole(ctx, s.role)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out := make([]model.Employee, 0, len(docs))
	for _, doc := range docs {
		out = append(out, EmployeeFromDocument(doc, s.loc))
	}
	return out, nil
}

// SearchEmployees loads employees and applies the name and status filters.
func (s *Service) SearchEmployees(ctx context.Context, search string, status *model.EmployeeStatus) ([]model.Employee, error) {
	list, err := s.Employees(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEmployees(list, search, status), nil
}

// CreateEmployee adds a users document with the employee role.
func (s *Service) CreateEmployee(ctx context.Context, in model.EmployeeInput) (model.Employee, error) {
	fields := employeeFields(in)
	fields["role"] = s.role
	fields["createdAt"] = s.now().UTC()

	id, err := s.store.CreateUser(ctx, fields)
	if err != nil {
		return model.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	fields["userId"] = id
	return EmployeeFromDocument(model.RawDocument{ID: id, Data: fields}, s.loc), nil
}

// UpdateEmployee overwrites the editable fields of an existing employee. id
// may be either the id shown in the employee table or the document id.
func (s *Service) UpdateEmployee(ctx context.Context, id string, in model.EmployeeInput) (model.Employee, error) {
	docIDs, err := s.docIDs(ctx)
	if err != nil {
		return model.Employee{}, err
	}
	docID, ok := docIDs[id]
	if !ok {
		return model.Employee{}, fmt.Errorf("update employee %s: %w", id, model.ErrNotFound)
	}
	if err := s.store.UpdateUser(ctx, docID, employeeFields(in)); err != nil {
		return model.Employee{}, fmt.Errorf("update employee %s: %w", id, err)
	}
	doc, err := s.store.GetUser(ctx, docID)
	if err != nil {
		return model.Employee{}, fmt.Errorf("reload employee %s: %w", id, err)
	}
	return EmployeeFromDocument(doc, s.loc), nil
}

// DeleteEmployees removes the given employees. Nothing is deleted when any id
// does not belong to an employee.
func (s *Service) DeleteEmployees(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	docIDs, err := s.docIDs(ctx)
	if err != nil {
		return err
	}
	targets := make([]string, 0, len(ids))
	var missing []string
	for _, id := range ids {
		docID, ok := docIDs[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		targets = append(targets, docID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("delete employees %v: %w", missing, model.ErrNotFound)
	}
	if err := s.store.DeleteUsers(ctx, targets); err != nil {
		return fmt.Errorf("delete employees: %w", err)
	}
	return nil
}

// docIDs maps every id a client may hold for an employee to its users
// document id. Table ids win over document ids when the two collide.
func (s *Service) docIDs(ctx context.Context) (map[string]string, error) {
	docs, err := s.store.ListUsersByRole(ctx, s.role)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out := make(map[string]string, 2*len(docs))
	for _, doc := range docs {
		out[util.StringOr(doc.Data, []string{"userId"}, doc.ID)] = doc.ID
	}
	for _, doc := range docs {
		if _, taken := out[doc.ID]; !taken {
			out[doc.ID] = doc.ID
		}
	}
	return out, nil
}

// Profile loads the profile card for uid.
func (s *Service) Profile(ctx context.Context, uid string) (model.Profile, error) {
	doc, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return model.Profile{}, fmt.Errorf("get profile %s: %w", uid, err)
	}
	return ProfileFromDocument(uid, doc, s.loc), nil
}
