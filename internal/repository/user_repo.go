package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/trashtocash/admin-api/pkg/model"
)

const usersCollection = "users"

// UserRepository manages the users collection, employees included.
type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) ListUsersByRole(ctx context.Context, role string) ([]model.RawDocument, error) {
	iter := r.client.Collection(usersCollection).Where("role", "==", role).Documents(ctx)
	return collectRaw(iter, usersCollection)
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (model.RawDocument, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return model.RawDocument{}, ErrNotFound
		}
		return model.RawDocument{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return toRaw(snap), nil
}

// CreateUser stores fields under a new document id and returns it.
func (r *UserRepository) CreateUser(ctx context.Context, fields map[string]any) (string, error) {
	ref := r.client.Collection(usersCollection).NewDoc()
	if _, err := ref.Set(ctx, fields); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return ref.ID, nil
}

// UpdateUser overwrites fields on an existing user. A missing user yields
// ErrNotFound instead of being created.
func (r *UserRepository) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, v := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: v})
	}
	if len(updates) == 0 {
		return nil
	}
	if _, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update user %s: %w", id, err)
	}
	return nil
}

// DeleteUsers removes ids in batches.
func (r *UserRepository) DeleteUsers(ctx context.Context, ids []string) error {
	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		batch := r.client.Batch()
		for _, id := range ids[start:end] {
			batch.Delete(r.client.Collection(usersCollection).Doc(id))
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("delete users [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}
