// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// PeriodInfo holds information about a single month of a series.
type PeriodInfo struct {
	Year        int
	Month       time.Month
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// GeneratePeriodLabel generates a human-readable label for a month,
// e.g. "Mar 2025".
func GeneratePeriodLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[month], year)
}

// GenerateMonthSeries generates every month between startDate and endDate,
// both included, so charts render without gaps.
func GenerateMonthSeries(startDate, endDate time.Time) []PeriodInfo {
	var periods []PeriodInfo

	current := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(endDate.Year(), endDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !current.After(last) {
		start, end := finance.MonthBounds(current.Year(), current.Month())
		periods = append(periods, PeriodInfo{
			Year:        current.Year(),
			Month:       current.Month(),
			PeriodStart: start,
			PeriodEnd:   end,
			PeriodLabel: GeneratePeriodLabel(current.Year(), current.Month()),
		})
		current = current.AddDate(0, 1, 0)
	}

	return periods
}

// validatePeriod checks a start/end date pair given to a dashboard query.
func validatePeriod(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if endDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if endDate.Before(startDate) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
