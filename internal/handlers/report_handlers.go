package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sales_reports_backend/internal/models"
	"sales_reports_backend/internal/salesapi"
	"sales_reports_backend/internal/services"
	"sales_reports_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// parseReportRequestParams helps parse common query parameters for reports.
func parseReportRequestParams(c *gin.Context) models.ReportRequestParams {
	var params models.ReportRequestParams
	params.StartDate = c.Query("start_date")
	params.EndDate = c.Query("end_date")
	params.Customer = c.Query("customer")

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if monthStr := c.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			params.Month = month
		}
	}
	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			params.Year = year
		}
	}
	return params
}

// respondReportError maps service errors onto the standard error envelope.
func respondReportError(c *gin.Context, operation string, err error) {
	utils.LogError(err, operation)
	switch {
	case errors.Is(err, services.ErrInvalidDateRange), errors.Is(err, services.ErrInvalidMonth):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid report parameters.", err.Error()))
	case errors.Is(err, salesapi.ErrUpstreamUnavailable),
		errors.Is(err, salesapi.ErrUpstreamStatus),
		errors.Is(err, salesapi.ErrUpstreamDecode):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamError, "Sales data is temporarily unavailable.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
	}
}

// GetTopProducts returns per-product summaries for a date range, ranked by revenue.
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	params := parseReportRequestParams(c)

	summaries, err := h.reportService.GetTopProducts(c.Request.Context(), params)
	if err != nil {
		respondReportError(c, "GetTopProducts", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetTopCustomers returns per-customer summaries for a date range, ranked by total spend.
func (h *ReportHandler) GetTopCustomers(c *gin.Context) {
	params := parseReportRequestParams(c)

	summaries, err := h.reportService.GetTopCustomers(c.Request.Context(), params)
	if err != nil {
		respondReportError(c, "GetTopCustomers", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetMonthlySummary returns the headline figures for one calendar month.
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	params := parseReportRequestParams(c)

	summary, err := h.reportService.GetMonthlySummary(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		respondReportError(c, "GetMonthlySummary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetMonthlyTopCustomers relays the upstream's pre-aggregated monthly top-customer ranking.
func (h *ReportHandler) GetMonthlyTopCustomers(c *gin.Context) {
	params := parseReportRequestParams(c)

	rows, err := h.reportService.GetMonthlyTopCustomers(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		respondReportError(c, "GetMonthlyTopCustomers", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetMonthlyTopProducts relays the upstream's pre-aggregated monthly top-product ranking.
func (h *ReportHandler) GetMonthlyTopProducts(c *gin.Context) {
	params := parseReportRequestParams(c)

	rows, err := h.reportService.GetMonthlyTopProducts(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		respondReportError(c, "GetMonthlyTopProducts", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCustomerPurchases returns the purchase history rows for a month,
// optionally filtered to a single customer name.
func (h *ReportHandler) GetCustomerPurchases(c *gin.Context) {
	params := parseReportRequestParams(c)

	rows, err := h.reportService.GetCustomerPurchases(c.Request.Context(), params.Month, params.Year, params.Customer)
	if err != nil {
		respondReportError(c, "GetCustomerPurchases", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetDashboardSummary provides a summary of key sales metrics for the dashboard.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.reportService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondReportError(c, "GetDashboardSummary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
