package utils

import (
	"math"
	"strconv"
	"time"
)

// FormatCurrency renders an amount in the service's fixed display locale:
// Indonesian rupiah with dot thousand separators and zero decimal places,
// e.g. 1234567.8 -> "Rp 1.234.568". The frontend renders these strings
// verbatim next to the raw numeric values.
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}
	return sign + "Rp " + string(grouped)
}

// MonthLabel returns the human heading for a report month, e.g. "January 2026".
func MonthLabel(month, year int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(year)
	}
	return time.Month(month).String() + " " + strconv.Itoa(year)
}

// FormatReportDate renders a timestamp the way report rows display dates.
func FormatReportDate(t time.Time) string {
	return t.Format("2006-01-02")
}
