// Package finance implements the financial projection and aggregation engine:
// annuity projections, goal evaluation, ledger rollups and the monthly
// consistency score. Every function is pure; callers inject the current time.
package finance

import (
	"math"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// MonthlyRate converts an annual percentage rate into a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// FutureValue projects presentValue plus periodicContribution deposited at the
// start of each month, compounding monthly at annualRatePercent, over periods months.
func FutureValue(presentValue, periodicContribution, annualRatePercent float64, periods int) (float64, error) {
	if annualRatePercent < 0 {
		return 0, domainerror.NewInvalidArgumentError(domainerror.ErrCodeNegativeRate, "annual rate must not be negative")
	}
	if periods < 0 {
		return 0, domainerror.NewInvalidArgumentError(domainerror.ErrCodeNegativePeriods, "periods must not be negative")
	}
	if periods == 0 {
		return presentValue, nil
	}

	r := MonthlyRate(annualRatePercent)
	n := float64(periods)
	if r == 0 {
		return presentValue + periodicContribution*n, nil
	}

	growth := math.Pow(1+r, n)
	return presentValue*growth + periodicContribution*((growth-1)/r)*(1+r), nil
}
