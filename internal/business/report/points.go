package report

import "github.com/trashtocash/admin-api/pkg/model"

// Points scores material totals against the weight table.
func Points(w model.Weights, t model.MaterialTotals) int64 {
	return t.Glass*w.Glass + t.Plastic*w.Plastic + t.Cans*w.Cans
}
