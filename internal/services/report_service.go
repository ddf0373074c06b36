package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sales_reports_backend/internal/models"
	"sales_reports_backend/internal/reports"
	"sales_reports_backend/internal/salesapi"
	"sales_reports_backend/pkg/utils"
)

// --- Custom Service Errors for Reports ---
var (
	ErrInvalidDateRange = errors.New("invalid date range, please use YYYY-MM-DD with start_date <= end_date")
	ErrInvalidMonth     = errors.New("invalid month, expected month 1-12 and a four-digit year")
)

const reportDateLayout = "2006-01-02"

// --- ReportService Interface ---
type ReportService interface {
	GetTopProducts(ctx context.Context, params models.ReportRequestParams) ([]models.ProductSummary, error)
	GetTopCustomers(ctx context.Context, params models.ReportRequestParams) ([]models.CustomerSummary, error)
	GetMonthlySummary(ctx context.Context, month, year int) (*models.MonthlySalesSummary, error)
	GetMonthlyTopCustomers(ctx context.Context, month, year int) ([]models.MonthlyTopCustomer, error)
	GetMonthlyTopProducts(ctx context.Context, month, year int) ([]models.MonthlyTopProduct, error)
	GetCustomerPurchases(ctx context.Context, month, year int, customer string) ([]models.CustomerPurchase, error)
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// --- reportService Implementation ---
type reportService struct {
	client salesapi.Client
	now    func() time.Time // injectable clock for dashboard tests
}

// NewReportService creates a new instance of ReportService backed by the
// given sales API client.
func NewReportService(client salesapi.Client) ReportService {
	return &reportService{client: client, now: time.Now}
}

func (s *reportService) GetTopProducts(ctx context.Context, params models.ReportRequestParams) ([]models.ProductSummary, error) {
	if err := validateDateRange(params.StartDate, params.EndDate); err != nil {
		return nil, err
	}

	records, err := s.client.FetchSales(ctx, params.StartDate, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("fetch sales for top products: %w", err)
	}

	summaries := reports.Limit(reports.AggregateProducts(records), params.Limit)
	for i := range summaries {
		summaries[i].RevenueDisplay = utils.FormatCurrency(summaries[i].Revenue)
	}
	return summaries, nil
}

func (s *reportService) GetTopCustomers(ctx context.Context, params models.ReportRequestParams) ([]models.CustomerSummary, error) {
	if err := validateDateRange(params.StartDate, params.EndDate); err != nil {
		return nil, err
	}

	records, err := s.client.FetchSales(ctx, params.StartDate, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("fetch sales for top customers: %w", err)
	}

	summaries := reports.Limit(reports.AggregateCustomers(records), params.Limit)
	for i := range summaries {
		summaries[i].TotalSpentDisplay = utils.FormatCurrency(summaries[i].TotalSpent)
	}
	return summaries, nil
}

// GetMonthlySummary recomputes the month's headline figures from the raw
// records of that month rather than trusting any upstream pre-aggregation,
// so the numbers always tie out with the top-product/top-customer tabs.
func (s *reportService) GetMonthlySummary(ctx context.Context, month, year int) (*models.MonthlySalesSummary, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}

	startDate, endDate := monthDateRange(month, year)
	records, err := s.client.FetchSales(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetch sales for monthly summary: %w", err)
	}

	summary := &models.MonthlySalesSummary{
		Month: month,
		Year:  year,
		Label: utils.MonthLabel(month, year),
	}
	customers := make(map[string]bool)
	for _, rec := range records {
		summary.OrderCount++
		summary.GrossRevenue += rec.TotalAmount
		for _, item := range rec.Items {
			summary.ItemsSold += item.Quantity
		}
		name := strings.TrimSpace(rec.CustomerName)
		if name == "" {
			name = reports.WalkInCustomerLabel
		}
		customers[name] = true
	}
	summary.DistinctCustomers = len(customers)
	if summary.OrderCount > 0 {
		summary.AvgOrderValue = summary.GrossRevenue / float64(summary.OrderCount)
	}
	summary.GrossRevenueDisplay = utils.FormatCurrency(summary.GrossRevenue)
	summary.AvgOrderValueDisplay = utils.FormatCurrency(summary.AvgOrderValue)
	return summary, nil
}

func (s *reportService) GetMonthlyTopCustomers(ctx context.Context, month, year int) ([]models.MonthlyTopCustomer, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}

	rows, err := s.client.FetchMonthlyTopCustomers(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("fetch monthly top customers: %w", err)
	}
	for i := range rows {
		rows[i].TotalSpentDisplay = utils.FormatCurrency(rows[i].TotalSpent)
	}
	return rows, nil
}

func (s *reportService) GetMonthlyTopProducts(ctx context.Context, month, year int) ([]models.MonthlyTopProduct, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}

	rows, err := s.client.FetchMonthlyTopProducts(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("fetch monthly top products: %w", err)
	}
	for i := range rows {
		rows[i].RevenueDisplay = utils.FormatCurrency(rows[i].Revenue)
	}
	return rows, nil
}

func (s *reportService) GetCustomerPurchases(ctx context.Context, month, year int, customer string) ([]models.CustomerPurchase, error) {
	if err := validateMonth(month, year); err != nil {
		return nil, err
	}

	rows, err := s.client.FetchCustomerPurchases(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("fetch customer purchases: %w", err)
	}

	customer = strings.TrimSpace(customer)
	if customer == "" {
		return rows, nil
	}
	filtered := []models.CustomerPurchase{}
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.CustomerName), customer) {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// GetDashboardSummary provides today / this week / this month sales totals.
// The week starts on Monday.
func (s *reportService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	startOfWeek := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday())+1)
	if startOfDay.Weekday() == time.Sunday {
		startOfWeek = startOfDay.AddDate(0, 0, -6)
	}
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// One fetch covers all three windows; the week can reach back into the
	// previous month.
	fetchStart := startOfMonth
	if startOfWeek.Before(startOfMonth) {
		fetchStart = startOfWeek
	}
	today := startOfDay.Format(reportDateLayout)
	records, err := s.client.FetchSales(ctx, fetchStart.Format(reportDateLayout), today)
	if err != nil {
		return nil, fmt.Errorf("fetch sales for dashboard: %w", err)
	}

	summary := &models.DashboardSummary{}
	for _, rec := range records {
		if !rec.CreatedAt.Before(startOfMonth) {
			summary.TotalSalesThisMonth += rec.TotalAmount
		}
		if !rec.CreatedAt.Before(startOfWeek) {
			summary.TotalSalesThisWeek += rec.TotalAmount
		}
		if !rec.CreatedAt.Before(startOfDay) {
			summary.OrdersToday++
			summary.TotalSalesToday += rec.TotalAmount
		}
	}
	return summary, nil
}

func validateDateRange(startDate, endDate string) error {
	start, err := time.Parse(reportDateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: bad start_date %q", ErrInvalidDateRange, startDate)
	}
	end, err := time.Parse(reportDateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: bad end_date %q", ErrInvalidDateRange, endDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date precedes start_date", ErrInvalidDateRange)
	}
	return nil
}

func validateMonth(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidMonth, month)
	}
	if year < 1000 || year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidMonth, year)
	}
	return nil
}

// monthDateRange returns the inclusive YYYY-MM-DD bounds of a calendar month.
func monthDateRange(month, year int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format(reportDateLayout), end.Format(reportDateLayout)
}
