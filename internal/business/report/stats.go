package report

import "github.com/trashtocash/admin-api/pkg/model"

// SumMaterials adds up material totals across the batch.
func SumMaterials(txs []model.Transaction) model.MaterialTotals {
	var sum model.MaterialTotals
	for _, tx := range txs {
		sum.Glass += tx.Materials.Glass
		sum.Plastic += tx.Materials.Plastic
		sum.Cans += tx.Materials.Cans
	}
	return sum
}

// MaterialBreakdown shapes totals for the donut chart.
func MaterialBreakdown(t model.MaterialTotals) []model.MaterialSlice {
	return []model.MaterialSlice{
		{Name: "Glass", Value: t.Glass, Color: "#60a5fa"},
		{Name: "Plastic", Value: t.Plastic, Color: "#34d399"},
		{Name: "Cans", Value: t.Cans, Color: "#f59e0b"},
	}
}
