// Package engine computes loan repayment economics: the fixed monthly
// installment (EMI) for a principal, annual rate, and tenure, and the
// month-by-month amortization schedule until the balance reaches zero.
// All functions are pure and re-entrant.
package engine

import (
	"math"

	"github.com/finwise/emi-engine/internal/domain"
	customError "github.com/finwise/emi-engine/pkg/errors"
)

const monthsPerYear = 12

// monthlyRate converts an annual percentage rate to a monthly decimal rate.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / monthsPerYear / 100
}

func validateTerms(principal, annualRatePercent float64, tenureYears int) error {
	if principal <= 0 {
		return customError.ErrInvalidPrincipal
	}
	if annualRatePercent < 0 {
		return customError.ErrInvalidRate
	}
	if tenureYears <= 0 {
		return customError.ErrInvalidTenure
	}
	return nil
}

// ComputeSummary derives the fixed monthly payment and aggregate totals for
// a loan using the standard amortizing-loan formula:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate is a defined limiting case (payment = P/n), not a numeric
// fault: evaluating the formula at r = 0 would yield 0/0.
func ComputeSummary(principal, annualRatePercent float64, tenureYears int) (domain.LoanSummary, error) {
	if err := validateTerms(principal, annualRatePercent, tenureYears); err != nil {
		return domain.LoanSummary{}, err
	}

	rate := monthlyRate(annualRatePercent)
	periodCount := tenureYears * monthsPerYear

	var payment float64
	if rate == 0 {
		payment = principal / float64(periodCount)
	} else {
		compound := math.Pow(1+rate, float64(periodCount))
		payment = principal * rate * compound / (compound - 1)
	}

	totalPayable := payment * float64(periodCount)

	return domain.LoanSummary{
		MonthlyPayment: payment,
		TotalInterest:  totalPayable - principal,
		TotalPayable:   totalPayable,
		Principal:      principal,
		PeriodCount:    periodCount,
	}, nil
}
