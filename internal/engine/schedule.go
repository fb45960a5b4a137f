package engine

import (
	"time"

	"github.com/finwise/emi-engine/internal/domain"
	"github.com/finwise/emi-engine/pkg/dates"
	customError "github.com/finwise/emi-engine/pkg/errors"
)

// ComputeSchedule produces the ordered amortization schedule for a loan,
// one entry per month for tenureYears*12 periods.
//
// payment is reused exactly as given rather than recomputed, so the schedule
// stays consistent with the summary it was derived from — including when a
// caller deliberately overrides the installment.
func ComputeSchedule(principal, annualRatePercent float64, tenureYears int, payment float64, start time.Time) ([]domain.ScheduleEntry, error) {
	if err := validateTerms(principal, annualRatePercent, tenureYears); err != nil {
		return nil, err
	}
	if payment <= 0 {
		return nil, customError.ErrInvalidPayment
	}

	rate := monthlyRate(annualRatePercent)
	periodCount := tenureYears * monthsPerYear

	schedule := make([]domain.ScheduleEntry, 0, periodCount)
	balance := principal

	for period := 1; period <= periodCount; period++ {
		interest := balance * rate
		principalPortion := payment - interest

		// Clamp at zero so rounding drift in the final periods can never
		// produce a negative balance.
		balance -= principalPortion
		if balance < 0 {
			balance = 0
		}

		month, year := dates.AddMonths(start.Year(), start.Month(), period)

		schedule = append(schedule, domain.ScheduleEntry{
			Period:             period,
			Month:              month,
			Year:               year,
			Payment:            payment,
			PrincipalPortion:   principalPortion,
			InterestPortion:    interest,
			OutstandingBalance: balance,
		})
	}

	return schedule, nil
}
