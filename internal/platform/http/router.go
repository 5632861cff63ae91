package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/trashtocash/admin-api/internal/business/dashboard"
	"github.com/trashtocash/admin-api/internal/business/report"
	"github.com/trashtocash/admin-api/internal/business/reviews"
	"github.com/trashtocash/admin-api/internal/business/staff"
)

// Services groups the business services the API serves.
type Services struct {
	Dashboard *dashboard.Service
	Reports   *report.Service
	Reviews   *reviews.Service
	Staff     *staff.Service
}

// Options tunes the router's cross-cutting behaviour.
type Options struct {
	AllowedOrigins   []string
	ReviewRatePerSec float64
	ReviewRateBurst  int
	Logger           zerolog.Logger
	// Now stamps export filenames; defaults to time.Now.
	Now func() time.Time
}

// Router wires HTTP handlers.
type Router struct {
	dashboard *dashboard.Service
	reports   *report.Service
	reviews   *reviews.Service
	staff     *staff.Service
	now       func() time.Time
}

func NewRouter(svc Services, opts Options) *gin.Engine {
	r := &Router{
		dashboard: svc.Dashboard,
		reports:   svc.Reports,
		reviews:   svc.Reviews,
		staff:     svc.Staff,
		now:       opts.Now,
	}
	if r.now == nil {
		r.now = time.Now
	}
	limiter := newIPLimiter(opts.ReviewRatePerSec, opts.ReviewRateBurst)

	router := gin.New()
	router.Use(gin.Recovery(), requestContext(opts.Logger), accessLog(), corsMiddleware(opts.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/dashboard", r.getDashboard)

		api.GET("/transactions", r.listTransactions)
		api.GET("/transactions/export", r.exportTransactions)

		api.GET("/reviews", r.listReviews)
		api.POST("/reviews", limiter.middleware(), r.submitReview)
		api.GET("/reviews/analysis", r.reviewAnalysis)

		api.GET("/employees", r.listEmployees)
		api.POST("/employees", r.createEmployee)
		api.PUT("/employees/:id", r.updateEmployee)
		api.DELETE("/employees", r.deleteEmployees)

		api.GET("/profile/:uid", r.getProfile)
		api.GET("/materials", r.listMaterials)
	}

	return router
}
