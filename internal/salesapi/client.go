package salesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sales_reports_backend/internal/models"
)

// Client defines the interface for fetching sales data from the upstream
// sales-recording API. It plays the role a database repository would play in
// a self-contained service: all report data enters through it.
type Client interface {
	// FetchSales returns the raw sale records created between startDate and
	// endDate (both YYYY-MM-DD, endDate inclusive).
	FetchSales(ctx context.Context, startDate, endDate string) ([]models.SaleRecord, error)

	// FetchMonthlyTopCustomers returns the upstream's pre-aggregated
	// top-customer ranking for the given month.
	FetchMonthlyTopCustomers(ctx context.Context, month, year int) ([]models.MonthlyTopCustomer, error)

	// FetchMonthlyTopProducts returns the upstream's pre-aggregated
	// top-product ranking for the given month.
	FetchMonthlyTopProducts(ctx context.Context, month, year int) ([]models.MonthlyTopProduct, error)

	// FetchCustomerPurchases returns the per-customer purchase rows for the
	// given month.
	FetchCustomerPurchases(ctx context.Context, month, year int) ([]models.CustomerPurchase, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Client talking to the sales API at baseURL. apiKey may
// be empty when the upstream does not require one.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) FetchSales(ctx context.Context, startDate, endDate string) ([]models.SaleRecord, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	records := []models.SaleRecord{}
	if err := c.getJSON(ctx, "/api/sales", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *httpClient) FetchMonthlyTopCustomers(ctx context.Context, month, year int) ([]models.MonthlyTopCustomer, error) {
	rows := []models.MonthlyTopCustomer{}
	if err := c.getJSON(ctx, "/api/reports/top-customers", monthQuery(month, year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *httpClient) FetchMonthlyTopProducts(ctx context.Context, month, year int) ([]models.MonthlyTopProduct, error) {
	rows := []models.MonthlyTopProduct{}
	if err := c.getJSON(ctx, "/api/reports/top-products", monthQuery(month, year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *httpClient) FetchCustomerPurchases(ctx context.Context, month, year int) ([]models.CustomerPurchase, error) {
	rows := []models.CustomerPurchase{}
	if err := c.getJSON(ctx, "/api/reports/customer-purchases", monthQuery(month, year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// getJSON performs a GET against the upstream API and decodes the JSON array
// response into out.
func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s -> %d", ErrUpstreamStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUpstreamDecode, path, err)
	}
	return nil
}

func monthQuery(month, year int) url.Values {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))
	return query
}
