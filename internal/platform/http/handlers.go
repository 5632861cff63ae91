package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trashtocash/admin-api/internal/business/report"
	"github.com/trashtocash/admin-api/internal/business/reviews"
	"github.com/trashtocash/admin-api/internal/business/staff"
	"github.com/trashtocash/admin-api/internal/platform/logging"
	"github.com/trashtocash/admin-api/pkg/model"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// fail logs err against the request and answers with a generic message.
func fail(c *gin.Context, status int, msg string, err error) {
	logger := logging.FromContext(c.Request.Context())
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
	c.JSON(status, gin.H{"error": msg})
}

func (r *Router) getDashboard(c *gin.Context) {
	sum, err := r.dashboard.Summary(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load dashboard", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func reportQuery(c *gin.Context) (report.Query, error) {
	status, err := report.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return report.Query{}, err
	}
	return report.Query{
		Search: c.Query("search"),
		Status: status,
		Mode:   report.ParseSearchMode(c.Query("view")),
	}, nil
}

func (r *Router) listTransactions(c *gin.Context) {
	q, err := reportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := r.reports.Report(c.Request.Context(), q)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load transactions", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (r *Router) exportTransactions(c *gin.Context) {
	q, err := reportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}

	res, err := r.reports.Report(c.Request.Context(), q)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load transactions", err)
		return
	}

	// Render fully before writing so a failure can still produce a JSON error.
	var buf bytes.Buffer
	contentType := "text/csv"
	if format == "xlsx" {
		contentType = xlsxContentType
		err = report.WriteXLSX(&buf, res.Items)
	} else {
		err = report.WriteCSV(&buf, res.Items)
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to export report", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.ExportFilename(r.now(), format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (r *Router) listReviews(c *gin.Context) {
	list, err := r.reviews.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load reviews", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (r *Router) reviewAnalysis(c *gin.Context) {
	page, err := r.reviews.Page(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load reviews", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monthly":          page.Monthly,
		"starDistribution": reviews.StarDistribution(page.Reviews),
		"total":            len(page.Reviews),
	})
}

func (r *Router) submitReview(c *gin.Context) {
	var in model.ReviewInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	id, err := r.reviews.Submit(c.Request.Context(), in)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to submit review", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (r *Router) listEmployees(c *gin.Context) {
	status, err := staff.ParseStatusFilter(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := r.staff.SearchEmployees(c.Request.Context(), c.Query("search"), status)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load employees", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (r *Router) createEmployee(c *gin.Context) {
	var in model.EmployeeInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	emp, err := r.staff.CreateEmployee(c.Request.Context(), in)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to create employee", err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

func (r *Router) updateEmployee(c *gin.Context) {
	var in model.EmployeeInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	emp, err := r.staff.UpdateEmployee(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to update employee", err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

type deleteEmployeesReq struct {
	IDs []string `json:"ids"`
}

func (r *Router) deleteEmployees(c *gin.Context) {
	var req deleteEmployeesReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	err := r.staff.DeleteEmployees(c.Request.Context(), req.IDs)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to delete employees", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": len(req.IDs)})
}

func (r *Router) getProfile(c *gin.Context) {
	profile, err := r.staff.Profile(c.Request.Context(), c.Param("uid"))
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (r *Router) listMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": staff.Materials()})
}
