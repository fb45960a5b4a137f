package domain

import (
	"github.com/google/uuid"
)

// LoanTerms are the caller-supplied inputs for one calculation. They are
// immutable for the duration of the call; nothing owns them afterwards.
type LoanTerms struct {
	Principal         float64 `json:"principal" validate:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate" validate:"gte=0"`
	TenureYears       int     `json:"tenure_years" validate:"required,gt=0"`
	// StartMonth anchors the schedule's calendar labels, "YYYY-MM".
	// Defaults to the current month when empty.
	StartMonth string `json:"start_month,omitempty" validate:"omitempty,len=7"`
}

// LoanSummary holds the fixed installment and aggregate totals for a loan.
//
// TotalPayable = MonthlyPayment * PeriodCount by construction, and
// TotalPayable = TotalInterest + Principal within floating-point tolerance.
type LoanSummary struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayable   float64 `json:"total_payable"`
	Principal      float64 `json:"principal"`
	PeriodCount    int     `json:"period_count"`
}

// DTOs for requests and responses

type CalculateLoanResponse struct {
	CalculationID uuid.UUID       `json:"calculation_id"`
	Summary       LoanSummary     `json:"summary"`
	Schedule      []ScheduleEntry `json:"schedule"`
	// YearlyCheckpoints is the schedule downsampled for charting: one entry
	// per 12 periods plus the final entry.
	YearlyCheckpoints []ScheduleEntry `json:"yearly_checkpoints"`
}

type AdviceResponse struct {
	Summary    LoanSummary `json:"summary"`
	Commentary string      `json:"commentary"`
}
