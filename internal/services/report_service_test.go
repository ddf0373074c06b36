package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales_reports_backend/internal/models"
	"sales_reports_backend/internal/salesapi"
)

// fakeSalesClient returns canned data and records the arguments it was
// called with.
type fakeSalesClient struct {
	sales         []models.SaleRecord
	topCustomers  []models.MonthlyTopCustomer
	topProducts   []models.MonthlyTopProduct
	purchases     []models.CustomerPurchase
	err           error
	lastStartDate string
	lastEndDate   string
}

func (f *fakeSalesClient) FetchSales(_ context.Context, startDate, endDate string) ([]models.SaleRecord, error) {
	f.lastStartDate, f.lastEndDate = startDate, endDate
	return f.sales, f.err
}

func (f *fakeSalesClient) FetchMonthlyTopCustomers(context.Context, int, int) ([]models.MonthlyTopCustomer, error) {
	return f.topCustomers, f.err
}

func (f *fakeSalesClient) FetchMonthlyTopProducts(context.Context, int, int) ([]models.MonthlyTopProduct, error) {
	return f.topProducts, f.err
}

func (f *fakeSalesClient) FetchCustomerPurchases(context.Context, int, int) ([]models.CustomerPurchase, error) {
	return f.purchases, f.err
}

var _ salesapi.Client = (*fakeSalesClient)(nil)

func sampleSales() []models.SaleRecord {
	sku := "A1"
	return []models.SaleRecord{
		{
			ID: 1, CustomerName: "Alice", TotalAmount: 100,
			CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
			Items: []models.LineItem{
				{ProductName: "Kopi", ProductSku: &sku, Quantity: 2, UnitPrice: 50, TotalPrice: 100},
			},
		},
		{
			ID: 2, CustomerName: "Alice", TotalAmount: 150,
			CreatedAt: time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
			Items: []models.LineItem{
				{ProductName: "Kopi", ProductSku: &sku, Quantity: 3, UnitPrice: 50, TotalPrice: 150},
			},
		},
		{
			ID: 3, CustomerName: "Bob", TotalAmount: 40,
			CreatedAt: time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC),
			Items: []models.LineItem{
				{ProductName: "Teh", Quantity: 2, UnitPrice: 20, TotalPrice: 40},
			},
		},
	}
}

func TestGetTopProductsRejectsBadDates(t *testing.T) {
	svc := NewReportService(&fakeSalesClient{})
	_, err := svc.GetTopProducts(context.Background(), models.ReportRequestParams{StartDate: "nope", EndDate: "2026-01-31"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	_, err = svc.GetTopProducts(context.Background(), models.ReportRequestParams{StartDate: "2026-02-01", EndDate: "2026-01-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange for reversed range, got %v", err)
	}
}

func TestGetTopProductsAggregatesAndFormats(t *testing.T) {
	fake := &fakeSalesClient{sales: sampleSales()}
	svc := NewReportService(fake)

	got, err := svc.GetTopProducts(context.Background(), models.ReportRequestParams{
		StartDate: "2026-01-01", EndDate: "2026-01-31",
	})
	if err != nil {
		t.Fatalf("get top products: %v", err)
	}
	if fake.lastStartDate != "2026-01-01" || fake.lastEndDate != "2026-01-31" {
		t.Errorf("date range not forwarded: %q..%q", fake.lastStartDate, fake.lastEndDate)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].Name != "Kopi" || got[0].Quantity != 5 || got[0].Revenue != 250 {
		t.Errorf("unexpected leader: %+v", got[0])
	}
	if got[0].RevenueDisplay != "Rp 250" {
		t.Errorf("revenue display: got %q", got[0].RevenueDisplay)
	}
}

func TestGetTopCustomersAppliesLimit(t *testing.T) {
	svc := NewReportService(&fakeSalesClient{sales: sampleSales()})

	got, err := svc.GetTopCustomers(context.Background(), models.ReportRequestParams{
		StartDate: "2026-01-01", EndDate: "2026-01-31", Limit: 1,
	})
	if err != nil {
		t.Fatalf("get top customers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected limit to keep 1 row, got %d", len(got))
	}
	if got[0].Name != "Alice" || got[0].OrderCount != 2 || got[0].TotalSpent != 250 {
		t.Errorf("unexpected leader: %+v", got[0])
	}
}

func TestGetTopProductsPropagatesUpstreamError(t *testing.T) {
	svc := NewReportService(&fakeSalesClient{err: salesapi.ErrUpstreamStatus})
	_, err := svc.GetTopProducts(context.Background(), models.ReportRequestParams{
		StartDate: "2026-01-01", EndDate: "2026-01-31",
	})
	if !errors.Is(err, salesapi.ErrUpstreamStatus) {
		t.Fatalf("expected upstream error to propagate, got %v", err)
	}
}

func TestGetMonthlySummary(t *testing.T) {
	fake := &fakeSalesClient{sales: sampleSales()}
	svc := NewReportService(fake)

	got, err := svc.GetMonthlySummary(context.Background(), 1, 2026)
	if err != nil {
		t.Fatalf("get monthly summary: %v", err)
	}
	if fake.lastStartDate != "2026-01-01" || fake.lastEndDate != "2026-01-31" {
		t.Errorf("month bounds: %q..%q", fake.lastStartDate, fake.lastEndDate)
	}
	if got.Label != "January 2026" {
		t.Errorf("label: got %q", got.Label)
	}
	if got.OrderCount != 3 || got.GrossRevenue != 290 || got.ItemsSold != 7 {
		t.Errorf("totals: %+v", got)
	}
	if got.DistinctCustomers != 2 {
		t.Errorf("distinct customers: expected 2, got %d", got.DistinctCustomers)
	}
	wantAvg := 290.0 / 3.0
	if diff := got.AvgOrderValue - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg order value: expected %v, got %v", wantAvg, got.AvgOrderValue)
	}
}

func TestGetMonthlySummaryRejectsBadMonth(t *testing.T) {
	svc := NewReportService(&fakeSalesClient{})
	if _, err := svc.GetMonthlySummary(context.Background(), 13, 2026); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
	if _, err := svc.GetMonthlyTopCustomers(context.Background(), 0, 2026); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestGetMonthlyTopCustomersFormatsDisplay(t *testing.T) {
	svc := NewReportService(&fakeSalesClient{topCustomers: []models.MonthlyTopCustomer{
		{CustomerName: "Citra", OrderCount: 4, TotalSpent: 900000},
	}})

	got, err := svc.GetMonthlyTopCustomers(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("get monthly top customers: %v", err)
	}
	if got[0].TotalSpentDisplay != "Rp 900.000" {
		t.Errorf("display: got %q", got[0].TotalSpentDisplay)
	}
}

func TestGetCustomerPurchasesFilters(t *testing.T) {
	svc := NewReportService(&fakeSalesClient{purchases: []models.CustomerPurchase{
		{CustomerName: "Alice", ProductName: "Kopi", Quantity: 2, TotalPrice: 100},
		{CustomerName: "Bob", ProductName: "Teh", Quantity: 1, TotalPrice: 20},
		{CustomerName: "alice ", ProductName: "Roti", Quantity: 1, TotalPrice: 15},
	}})

	all, err := svc.GetCustomerPurchases(context.Background(), 1, 2026, "")
	if err != nil {
		t.Fatalf("get purchases: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all rows without filter, got %d", len(all))
	}

	filtered, err := svc.GetCustomerPurchases(context.Background(), 1, 2026, "ALICE")
	if err != nil {
		t.Fatalf("get filtered purchases: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected case-insensitive match on 2 rows, got %d", len(filtered))
	}
}

func TestGetDashboardSummaryWindows(t *testing.T) {
	// Fixed "now": Wednesday 2026-01-14. Week starts Monday 2026-01-12.
	now := time.Date(2026, 1, 14, 15, 0, 0, 0, time.UTC)
	fake := &fakeSalesClient{sales: []models.SaleRecord{
		{ID: 1, TotalAmount: 10, CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)},  // month only
		{ID: 2, TotalAmount: 20, CreatedAt: time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)}, // week
		{ID: 3, TotalAmount: 30, CreatedAt: time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)},  // today
	}}
	svc := &reportService{client: fake, now: func() time.Time { return now }}

	got, err := svc.GetDashboardSummary(context.Background())
	if err != nil {
		t.Fatalf("get dashboard summary: %v", err)
	}
	if got.TotalSalesThisMonth != 60 {
		t.Errorf("month total: expected 60, got %v", got.TotalSalesThisMonth)
	}
	if got.TotalSalesThisWeek != 50 {
		t.Errorf("week total: expected 50, got %v", got.TotalSalesThisWeek)
	}
	if got.TotalSalesToday != 30 || got.OrdersToday != 1 {
		t.Errorf("today: expected 30/1, got %v/%d", got.TotalSalesToday, got.OrdersToday)
	}
}
