package repository

import (
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/trashtocash/admin-api/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = model.ErrNotFound

// batchSize caps the writes sent in one Firestore batch.
const batchSize = 400

// collectRaw drains iter into raw documents. Field values are kept as decoded
// by the client so callers can apply their own defaults.
func collectRaw(iter *firestore.DocumentIterator, collection string) ([]model.RawDocument, error) {
	defer iter.Stop()
	var docs []model.RawDocument
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate %s: %w", collection, err)
		}
		docs = append(docs, toRaw(doc))
	}
	return docs, nil
}

func toRaw(doc *firestore.DocumentSnapshot) model.RawDocument {
	return model.RawDocument{ID: doc.Ref.ID, Data: doc.Data()}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
