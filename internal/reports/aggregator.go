package reports

import (
	"sort"
	"strings"

	"sales_reports_backend/internal/models"
)

// Labels used when the upstream record carries no usable identity.
const (
	UnknownProductLabel = "Unknown Product"
	WalkInCustomerLabel = "Walk-in Customer"
)

// AggregateProducts folds raw sale records into per-product summaries.
// Line items merge under their SKU when present, otherwise under the product
// name; items with neither merge under "Unknown Product". AvgPrice is derived
// from the cumulative totals after all merging completes (revenue/quantity),
// not by averaging per-transaction unit prices, so a later high-volume
// low-price sale pulls the average toward it. The result is sorted by revenue
// descending; ties keep the order in which their merge key was first seen.
// The input is never mutated.
func AggregateProducts(records []models.SaleRecord) []models.ProductSummary {
	index := make(map[string]int)
	summaries := []models.ProductSummary{}

	for _, rec := range records {
		for _, item := range rec.Items {
			key := productMergeKey(item)
			idx, ok := index[key]
			if !ok {
				idx = len(summaries)
				index[key] = idx
				summaries = append(summaries, models.ProductSummary{
					Name:     productDisplayName(item),
					Sku:      nonEmptyPtr(item.ProductSku),
					Category: nonEmptyPtr(item.Category),
				})
			}
			summaries[idx].Quantity += item.Quantity
			summaries[idx].Revenue += item.TotalPrice
			if summaries[idx].Category == nil {
				summaries[idx].Category = nonEmptyPtr(item.Category)
			}
		}
	}

	for i := range summaries {
		if summaries[i].Quantity != 0 {
			summaries[i].AvgPrice = summaries[i].Revenue / float64(summaries[i].Quantity)
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Revenue > summaries[j].Revenue
	})
	return summaries
}

// AggregateCustomers folds raw sale records into per-customer summaries,
// keyed by customer name; records with a blank name merge under
// "Walk-in Customer". Each record contributes one order, its total amount,
// and the union of its line items' product names. The result is sorted by
// total spent descending with first-seen order breaking ties. The input is
// never mutated.
func AggregateCustomers(records []models.SaleRecord) []models.CustomerSummary {
	index := make(map[string]int)
	seenProducts := make(map[string]map[string]bool)
	summaries := []models.CustomerSummary{}

	for _, rec := range records {
		name := strings.TrimSpace(rec.CustomerName)
		if name == "" {
			name = WalkInCustomerLabel
		}

		idx, ok := index[name]
		if !ok {
			idx = len(summaries)
			index[name] = idx
			seenProducts[name] = make(map[string]bool)
			summaries = append(summaries, models.CustomerSummary{
				Name:     name,
				Phone:    nonEmptyPtr(rec.CustomerPhone),
				Type:     nonEmptyPtr(rec.CustomerType),
				Products: []string{},
			})
		}

		summaries[idx].OrderCount++
		summaries[idx].TotalSpent += rec.TotalAmount
		if summaries[idx].Phone == nil {
			summaries[idx].Phone = nonEmptyPtr(rec.CustomerPhone)
		}
		if summaries[idx].Type == nil {
			summaries[idx].Type = nonEmptyPtr(rec.CustomerType)
		}

		for _, item := range rec.Items {
			product := productDisplayName(item)
			if !seenProducts[name][product] {
				seenProducts[name][product] = true
				summaries[idx].Products = append(summaries[idx].Products, product)
			}
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSpent > summaries[j].TotalSpent
	})
	return summaries
}

// Limit returns at most n leading elements of s. n <= 0 means no limit.
func Limit[T any](s []T, n int) []T {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n:n]
}

// productMergeKey picks the identity a line item aggregates under: SKU when
// present and non-empty, otherwise the product name, otherwise the unknown
// label.
func productMergeKey(item models.LineItem) string {
	if item.ProductSku != nil && strings.TrimSpace(*item.ProductSku) != "" {
		return strings.TrimSpace(*item.ProductSku)
	}
	if name := strings.TrimSpace(item.ProductName); name != "" {
		return name
	}
	return UnknownProductLabel
}

func productDisplayName(item models.LineItem) string {
	if name := strings.TrimSpace(item.ProductName); name != "" {
		return name
	}
	return UnknownProductLabel
}

// nonEmptyPtr normalizes optional upstream strings: nil or blank becomes nil.
func nonEmptyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
