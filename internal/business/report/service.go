package report

import (
	"context"
	"fmt"
	"time"

	"github.com/trashtocash/admin-api/internal/platform/logging"
	"github.com/trashtocash/admin-api/pkg/model"
)

// TransactionStore abstracts the recycle_transactions collection so the report
// can be built without Firestore in tests.
type TransactionStore interface {
	ListTransactions(ctx context.Context) ([]model.RawDocument, error)
}

// Snapshot is one load of the transaction collection, normalized and sorted
// newest first.
type Snapshot struct {
	Transactions []model.Transaction
	Errors       int
}

// Stats summarizes the whole snapshot, independent of any filter.
func (s Snapshot) Stats() model.ReportStats {
	return model.ReportStats{
		RecyclingProcessErrors: s.Errors,
		TotalRecyclingProcess:  len(s.Transactions),
		TotalWithoutErrors:     len(s.Transactions) - s.Errors,
	}
}

// Result is a filtered report page.
type Result struct {
	Items []model.TransactionRow `json:"items"`
	Stats model.ReportStats      `json:"stats"`
}

// Service builds report views from the transaction store.
type Service struct {
	store      TransactionStore
	normalizer *Normalizer
	loc        *time.Location
}

func NewService(store TransactionStore, normalizer *Normalizer, loc *time.Location) *Service {
	if normalizer == nil {
		normalizer = DefaultNormalizer()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, normalizer: normalizer, loc: loc}
}

// Location is the zone used for display dates and times.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Load fetches every transaction and normalizes the batch.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	raws, err := s.store.ListTransactions(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list transactions: %w", err)
	}
	logger := logging.FromContext(ctx)
	for _, raw := range raws {
		if v := raw.Data[fieldStatus]; !KnownStatus(v) {
			logger.Debug().
				Str("id", raw.ID).
				Interface("status", v).
				Msg("unrecognized transaction status, reading as done")
		}
	}
	txs, errCount := s.normalizer.NormalizeAll(raws)
	SortByRecency(txs)
	return Snapshot{Transactions: txs, Errors: errCount}, nil
}

// Report loads the collection and applies q.
func (s *Service) Report(ctx context.Context, q Query) (Result, error) {
	snap, err := s.Load(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Items: Rows(Filter(snap.Transactions, q, s.loc), s.loc),
		Stats: snap.Stats(),
	}, nil
}
