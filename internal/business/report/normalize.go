package report

import (
	"strings"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

const (
	fieldItems  = "items"
	fieldPoints = "points"
	fieldStatus = "status"
)

// Normalizer turns raw recycle_transactions documents into Transactions.
type Normalizer struct {
	weights model.Weights
	aliases model.FieldAliases
}

// NewNormalizer builds a Normalizer. Zero-valued alias lists fall back to the
// defaults so a partial scoring file cannot blank out a lookup.
func NewNormalizer(weights model.Weights, aliases model.FieldAliases) *Normalizer {
	def := model.DefaultFieldAliases()
	if len(aliases.OccurredAt) == 0 {
		aliases.OccurredAt = def.OccurredAt
	}
	if len(aliases.EmployeeID) == 0 {
		aliases.EmployeeID = def.EmployeeID
	}
	if len(aliases.UserID) == 0 {
		aliases.UserID = def.UserID
	}
	return &Normalizer{weights: weights, aliases: aliases}
}

// DefaultNormalizer uses the standard weight table and field aliases.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(model.DefaultWeights, model.DefaultFieldAliases())
}

// Normalize resolves one raw transaction. When errCount is non-nil it is
// incremented for transactions in the Error state.
func (n *Normalizer) Normalize(raw model.RawDocument, errCount *int) model.Transaction {
	data := raw.Data

	materials := ParseItems(data[fieldItems])

	// A computed zero means "unknown", so a stored value takes over.
	points := Points(n.weights, materials)
	if points == 0 {
		if stored, ok := util.ToInt(data[fieldPoints]); ok && stored > 0 {
			points = stored
		}
	}

	tx := model.Transaction{
		ID:         raw.ID,
		EmployeeID: util.StringOr(data, n.aliases.EmployeeID, util.NotAvailable),
		UserID:     util.StringOr(data, n.aliases.UserID, util.NotAvailable),
		Materials:  materials,
		Points:     points,
		Status:     StatusOf(data[fieldStatus]),
	}

	if v, ok := util.Lookup(data, n.aliases.OccurredAt); ok {
		if ts, ok := util.ToTime(v); ok {
			tx.OccurredAt = &ts
		}
	}

	if tx.Status == model.StatusError && errCount != nil {
		*errCount++
	}
	return tx
}

// NormalizeAll normalizes a batch and reports how many are in the Error state.
func (n *Normalizer) NormalizeAll(raws []model.RawDocument) ([]model.Transaction, int) {
	errCount := 0
	out := make([]model.Transaction, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.Normalize(raw, &errCount))
	}
	return out, errCount
}

// StatusOf reads the stored enum. Unrecognized values are treated like a
// missing status.
func StatusOf(v any) model.RecyclingStatus {
	s, _ := parseStatus(v)
	return s
}

// KnownStatus reports whether v is a missing status or one of the enum values.
// Anything else is read as Done and points at schema drift.
func KnownStatus(v any) bool {
	_, ok := parseStatus(v)
	return ok
}

func parseStatus(v any) (model.RecyclingStatus, bool) {
	if v == nil {
		return model.StatusDone, true
	}
	if n, ok := util.ToInt(v); ok {
		switch s := model.RecyclingStatus(n); s {
		case model.StatusDone, model.StatusPending, model.StatusError:
			return s, true
		}
		return model.StatusDone, false
	}
	if s, ok := v.(string); ok {
		if status, ok := statusByKey[strings.ToLower(strings.TrimSpace(s))]; ok {
			return status, true
		}
	}
	return model.StatusDone, false
}
