package dashboard

import (
	"context"
	"time"

	"github.com/trashtocash/admin-api/internal/business/report"
	"github.com/trashtocash/admin-api/internal/business/reviews"
	"github.com/trashtocash/admin-api/internal/business/staff"
	"github.com/trashtocash/admin-api/pkg/model"
	"golang.org/x/sync/errgroup"
)

// recentLimit is how many transactions the home page lists.
const recentLimit = 5

// Summary is the home page payload.
type Summary struct {
	Stats     model.DashboardStats   `json:"stats"`
	Employees []model.Employee       `json:"employees"`
	Recent    []model.TransactionRow `json:"recent"`
}

// Service assembles the home page from the three collections it reads.
type Service struct {
	reports *report.Service
	reviews *reviews.Service
	staff   *staff.Service
}

func NewService(reports *report.Service, reviewSvc *reviews.Service, staffSvc *staff.Service) *Service {
	return &Service{reports: reports, reviews: reviewSvc, staff: staffSvc}
}

// Summary loads employees, transactions and reviews concurrently. The first
// failure cancels the remaining reads.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var (
		employees []model.Employee
		snap      report.Snapshot
		list      []model.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.staff.Employees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap, err = s.reports.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = s.reviews.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Build(employees, snap, list, s.reports.Location()), nil
}

// Build derives the home page from already loaded data.
func Build(employees []model.Employee, snap report.Snapshot, list []model.Review, loc *time.Location) Summary {
	recent := snap.Transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return Summary{
		Stats: model.DashboardStats{
			TotalEmployees:         len(employees),
			RecyclingProcessErrors: snap.Errors,
			TotalRecyclingProcess:  len(snap.Transactions),
			StarDistribution:       reviews.StarDistribution(list),
			MaterialBreakdown:      report.MaterialBreakdown(report.SumMaterials(snap.Transactions)),
		},
		Employees: employees,
		Recent:    report.Rows(recent, loc),
	}
}
