package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/DKMApps/masjid_kas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes. All reports are
// read-only, so a single view permission covers the group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, userService portssvc.UserSvcFacade) {
	h := newReportingHandler(reportingService)

	reportGroup := rg.Group("/reports", middleware.RequirePermission(userService, domain.PageReports, domain.ActionView))
	{
		reportGroup.GET("/balance", h.getBalance)
		reportGroup.GET("/summary", h.getPeriodSummary)
		reportGroup.GET("/daily", h.getDailySeries)
		reportGroup.GET("/monthly", h.getMonthlySeries)
		reportGroup.GET("/breakdown", h.getCategoryBreakdown)
		reportGroup.GET("/top-expenses", h.getTopExpenses)
		reportGroup.GET("/dashboard", h.getDashboard)
		reportGroup.GET("/export", h.getExportRows)
	}
}

// bindPeriod binds and parses the from/to query parameters. It writes the
// error response itself when binding fails.
func (h *reportingHandler) bindPeriod(c *gin.Context) (from, to time.Time, ok bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}

	// Formats are already validated by the binding.
	from, _ = time.Parse("2006-01-02", params.From)
	to, _ = time.Parse("2006-01-02", params.To)
	return from, to, true
}

// respondReportError maps the shared report error cases to HTTP statuses.
func (h *reportingHandler) respondReportError(c *gin.Context, err error, operation string) {
	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if errors.Is(err, apperrors.ErrNotConfigured) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Mosque has not been configured yet"})
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error("Report failed", slog.String("operation", operation), slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
}

// getBalance godoc
// @Summary Current cash position
// @Description Returns opening balance, lifetime totals and the current balance.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/balance [get]
func (h *reportingHandler) getBalance(c *gin.Context) {
	balance, err := h.reportingService.GetBalance(c.Request.Context())
	if err != nil {
		h.respondReportError(c, err, "balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// getPeriodSummary godoc
// @Summary Period summary
// @Description Returns period totals plus percent change versus the preceding period of equal length.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getPeriodSummary(c *gin.Context) {
	from, to, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetPeriodSummary(c.Request.Context(), from, to)
	if err != nil {
		h.respondReportError(c, err, "summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(summary, from, to))
}

// getDailySeries godoc
// @Summary Daily income and expense series
// @Description Returns one bucket per calendar day in the period, zero-filled.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) getDailySeries(c *gin.Context) {
	from, to, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	series, err := h.reportingService.GetDailySeries(c.Request.Context(), from, to)
	if err != nil {
		h.respondReportError(c, err, "daily")
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesResponse(series))
}

// getMonthlySeries godoc
// @Summary Six month trend
// @Description Returns six monthly buckets ending at the current month, oldest first.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SeriesResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySeries(c *gin.Context) {
	series, err := h.reportingService.GetMonthlySeries(c.Request.Context())
	if err != nil {
		h.respondReportError(c, err, "monthly")
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesResponse(series))
}

type breakdownParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
	Type string `form:"type,default=EXPENSE" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// getCategoryBreakdown godoc
// @Summary Category breakdown
// @Description Returns per-category totals for the period, largest first.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Param type query string false "Transaction type (default EXPENSE)"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/breakdown [get]
func (h *reportingHandler) getCategoryBreakdown(c *gin.Context) {
	var params breakdownParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", params.From)
	to, _ := time.Parse("2006-01-02", params.To)
	txType := domain.TransactionType(params.Type)

	items, err := h.reportingService.GetCategoryBreakdown(c.Request.Context(), from, to, txType)
	if err != nil {
		h.respondReportError(c, err, "breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(items, from, to, txType))
}

// getTopExpenses godoc
// @Summary Top expense categories
// @Description Returns the five largest expense categories of the period.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-expenses [get]
func (h *reportingHandler) getTopExpenses(c *gin.Context) {
	from, to, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	items, err := h.reportingService.GetTopExpenses(c.Request.Context(), from, to)
	if err != nil {
		h.respondReportError(c, err, "top-expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(items, from, to, domain.Expense))
}

// dashboardPeriod returns the month window shown on the dashboard. The
// aggregation happens in UTC, so the displayed bounds are derived in UTC too;
// using the server zone here could label a different month near a boundary.
func dashboardPeriod(now time.Time) (monthStart, monthEnd time.Time) {
	now = now.UTC()
	monthStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd = monthStart.AddDate(0, 1, -1)
	return monthStart, monthEnd
}

// getDashboard godoc
// @Summary Dashboard report
// @Description Composes the balance, current month summary, six month trend and top expenses.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	now := time.Now()

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context(), now.UTC())
	if err != nil {
		h.respondReportError(c, err, "dashboard")
		return
	}

	monthStart, monthEnd := dashboardPeriod(now)
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard, monthStart, monthEnd))
}

// getExportRows godoc
// @Summary Export rows
// @Description Returns the flat rows for the period used by report file writers. Empty periods return 404.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Success 200 {object} dto.ExportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No transactions in the period"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportingHandler) getExportRows(c *gin.Context) {
	from, to, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.GetExportRows(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No transactions found in the selected period"})
			return
		}
		h.respondReportError(c, err, "export")
		return
	}

	c.JSON(http.StatusOK, dto.ToExportResponse(rows, from, to))
}
