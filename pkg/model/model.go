package model

import (
	"errors"
	"strconv"
	"time"
)

// ErrNotFound is returned by stores when a document does not exist.
var ErrNotFound = errors.New("not found")

// RawDocument is an unvalidated Firestore document. Every field in Data may be
// absent or carry an unexpected type.
type RawDocument struct {
	ID   string
	Data map[string]any
}

// RecyclingStatus mirrors the integer enum stored on recycle_transactions.
type RecyclingStatus int

const (
	StatusDone RecyclingStatus = iota
	StatusPending
	StatusError
)

// Label returns the human readable status used by the table and the CSV export.
func (s RecyclingStatus) Label() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusPending:
		return "Pending"
	case StatusError:
		return "Error"
	}
	return strconv.Itoa(int(s))
}

// MaterialTotals sums item counts per recognized material category.
type MaterialTotals struct {
	Glass   int64 `json:"glass"`
	Plastic int64 `json:"plastic"`
	Cans    int64 `json:"cans"`
}

// Weights is the per-unit reward table applied to MaterialTotals.
type Weights struct {
	Glass   int64 `json:"glass"`
	Plastic int64 `json:"plastic"`
	Cans    int64 `json:"cans"`
}

// DefaultWeights is the reward table used when no scoring file overrides it.
var DefaultWeights = Weights{Glass: 2, Plastic: 3, Cans: 5}

// FieldAliases lists, in lookup order, the field names a transaction value may
// be stored under. The store has drifted between camelCase and snake_case.
type FieldAliases struct {
	OccurredAt []string `json:"occurredAt"`
	EmployeeID []string `json:"employeeId"`
	UserID     []string `json:"userId"`
}

// DefaultFieldAliases matches the documents written by the mobile app so far.
func DefaultFieldAliases() FieldAliases {
	return FieldAliases{
		OccurredAt: []string{"scannedAt", "timestamp", "createdAt"},
		EmployeeID: []string{"employee_id", "employeeId"},
		UserID:     []string{"user_id", "userId"},
	}
}

// Transaction is a recycling transaction after defaulting, identifier
// resolution and points computation.
type Transaction struct {
	ID         string
	EmployeeID string
	UserID     string
	Materials  MaterialTotals
	Points     int64
	OccurredAt *time.Time
	Status     RecyclingStatus
}

// TransactionRow is the display projection served to the dashboard tables.
type TransactionRow struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	UserID        string          `json:"userId"`
	AmountGlass   int64           `json:"amountGlass"`
	AmountPlastic int64           `json:"amountPlastic"`
	AmountCans    int64           `json:"amountCans"`
	Points        int64           `json:"points"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Status        RecyclingStatus `json:"status"`
	StatusLabel   string          `json:"statusLabel"`
}

// ReportStats summarizes a batch of transactions for the report cards.
type ReportStats struct {
	RecyclingProcessErrors int `json:"recyclingProcessErrors"`
	TotalRecyclingProcess  int `json:"totalRecyclingProcess"`
	TotalWithoutErrors     int `json:"totalWithoutErrors"`
}

// Review is a customer review. CreatedAt keeps the original datetime while
// Date holds the display string derived from it.
type Review struct {
	ID        string     `json:"id"`
	UserName  string     `json:"userName"`
	Email     string     `json:"email"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	Date      string     `json:"date"`
}

// ReviewInput is the document appended to the reviews collection.
type ReviewInput struct {
	UserName  string    `json:"userName" firestore:"userName"`
	Email     string    `json:"email" firestore:"email"`
	Rating    int       `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"-" firestore:"createdAt"`
}

// MonthlyReviewBucket counts positive and negative reviews for one month.
type MonthlyReviewBucket struct {
	Month    string `json:"month"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
}

// EmployeeStatus is the shift state shown on the employee table.
type EmployeeStatus int

const (
	EmployeeShift EmployeeStatus = iota
	EmployeeAbsent
	EmployeeBreak
)

func (s EmployeeStatus) Label() string {
	switch s {
	case EmployeeShift:
		return "Shift"
	case EmployeeAbsent:
		return "Absent"
	case EmployeeBreak:
		return "Break"
	}
	return strconv.Itoa(int(s))
}

// Employee is a user document with role "employ" projected for the table.
// ID is the auth user id when the document carries one; DocID is always the
// users document id.
type Employee struct {
	ID        string         `json:"id"`
	DocID     string         `json:"docId"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Warehouse string         `json:"warehouse"`
	Date      string         `json:"date"`
	Status    EmployeeStatus `json:"status"`
}

// EmployeeInput carries the editable employee fields.
type EmployeeInput struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Warehouse string         `json:"warehouse"`
	Status    EmployeeStatus `json:"status"`
}

// MaterialStatus marks whether a material is accepted at the machines.
type MaterialStatus int

const (
	MaterialActive MaterialStatus = iota
	MaterialInactive
)

type Material struct {
	ID       string         `json:"id"`
	TypeIcon string         `json:"typeIcon"`
	Name     string         `json:"name"`
	Status   MaterialStatus `json:"status"`
}

// MaterialSlice is one segment of the material donut chart.
type MaterialSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// DashboardStats is the home page summary.
type DashboardStats struct {
	TotalEmployees         int             `json:"totalEmployees"`
	RecyclingProcessErrors int             `json:"recyclingProcessErrors"`
	TotalRecyclingProcess  int             `json:"totalRecyclingProcess"`
	StarDistribution       [5]int          `json:"starDistribution"`
	MaterialBreakdown      []MaterialSlice `json:"materialBreakdown"`
}

// Profile is the signed-in user's account card.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"`
	CreatedAt string `json:"createdAt"`
	UserID    string `json:"userId"`
}
