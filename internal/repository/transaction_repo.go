package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/trashtocash/admin-api/pkg/model"
)

const transactionsCollection = "recycle_transactions"

// TransactionRepository reads and patches recycle_transactions.
type TransactionRepository struct {
	client *firestore.Client
}

func NewTransactionRepository(client *firestore.Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

// ListTransactions loads the whole collection.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]model.RawDocument, error) {
	return collectRaw(r.client.Collection(transactionsCollection).Documents(ctx), transactionsCollection)
}

func (r *TransactionRepository) GetTransaction(ctx context.Context, id string) (model.RawDocument, error) {
	snap, err := r.client.Collection(transactionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return model.RawDocument{}, ErrNotFound
		}
		return model.RawDocument{}, fmt.Errorf("get transaction %s: %w", id, err)
	}
	return toRaw(snap), nil
}

// Patch is a partial update for one document.
type Patch struct {
	ID     string
	Fields map[string]any
}

// BatchPatch merges fields into transactions, batchSize documents per commit.
func (r *TransactionRepository) BatchPatch(ctx context.Context, patches []Patch) error {
	for start := 0; start < len(patches); start += batchSize {
		end := min(start+batchSize, len(patches))
		batch := r.client.Batch()
		for _, p := range patches[start:end] {
			ref := r.client.Collection(transactionsCollection).Doc(p.ID)
			batch.Set(ref, p.Fields, firestore.MergeAll)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}
