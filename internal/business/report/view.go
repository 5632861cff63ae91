package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

// SearchMode selects which fields the free-text search looks at.
type SearchMode int

const (
	// SearchID matches the transaction id only (report view).
	SearchID SearchMode = iota
	// SearchAny matches the string form of every displayed field (warehouse view).
	SearchAny
)

// ParseSearchMode maps the view query parameter to a SearchMode.
func ParseSearchMode(view string) SearchMode {
	if strings.EqualFold(strings.TrimSpace(view), "warehouse") {
		return SearchAny
	}
	return SearchID
}

var statusByKey = map[string]model.RecyclingStatus{
	"done":    model.StatusDone,
	"pending": model.StatusPending,
	"error":   model.StatusError,
}

// ParseStatusFilter maps a filter key (all, done, pending, error) to a status.
// "all" and the empty string mean no filter.
func ParseStatusFilter(key string) (*model.RecyclingStatus, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || key == "all" {
		return nil, nil
	}
	status, ok := statusByKey[key]
	if !ok {
		return nil, fmt.Errorf("unknown status filter %q", key)
	}
	return &status, nil
}

// Query is a search and status filter over a batch of transactions.
type Query struct {
	Search string
	Status *model.RecyclingStatus
	Mode   SearchMode
}

// SortByRecency orders transactions newest first. Missing timestamps rank as
// the Unix epoch and keep their relative order.
func SortByRecency(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return sortKey(txs[i]) > sortKey(txs[j])
	})
}

func sortKey(tx model.Transaction) int64 {
	if tx.OccurredAt == nil {
		return 0
	}
	return tx.OccurredAt.UnixMilli()
}

// Filter returns the transactions that match q, preserving order. loc is the
// display location used when searching date and time strings.
func Filter(txs []model.Transaction, q Query, loc *time.Location) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if q.Status != nil && tx.Status != *q.Status {
			continue
		}
		if q.Search != "" && !matchesSearch(tx, q, loc) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesSearch(tx model.Transaction, q Query, loc *time.Location) bool {
	if q.Mode == SearchID {
		return util.ContainsFold(tx.ID, q.Search)
	}
	for _, field := range searchableFields(tx, loc) {
		if util.ContainsFold(field, q.Search) {
			return true
		}
	}
	return false
}

// searchableFields lists the string form of every column in the warehouse
// table, including the numeric status code and the raw sort key.
func searchableFields(tx model.Transaction, loc *time.Location) []string {
	return []string{
		tx.ID,
		tx.EmployeeID,
		tx.UserID,
		strconv.FormatInt(tx.Materials.Glass, 10),
		strconv.FormatInt(tx.Materials.Plastic, 10),
		strconv.FormatInt(tx.Materials.Cans, 10),
		strconv.FormatInt(tx.Points, 10),
		util.DisplayDate(tx.OccurredAt, loc),
		util.DisplayTime(tx.OccurredAt, loc),
		strconv.Itoa(int(tx.Status)),
		strconv.FormatInt(sortKey(tx), 10),
	}
}

// Rows projects transactions into their display form.
func Rows(txs []model.Transaction, loc *time.Location) []model.TransactionRow {
	rows := make([]model.TransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, Row(tx, loc))
	}
	return rows
}

// Row projects one transaction into its table row, dates in loc.
func Row(tx model.Transaction, loc *time.Location) model.TransactionRow {
	return model.TransactionRow{
		ID:            tx.ID,
		EmployeeID:    tx.EmployeeID,
		UserID:        tx.UserID,
		AmountGlass:   tx.Materials.Glass,
		AmountPlastic: tx.Materials.Plastic,
		AmountCans:    tx.Materials.Cans,
		Points:        tx.Points,
		Date:          util.DisplayDate(tx.OccurredAt, loc),
		Time:          util.DisplayTime(tx.OccurredAt, loc),
		Status:        tx.Status,
		StatusLabel:   tx.Status.Label(),
	}
}
