package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customError "github.com/finwise/emi-engine/pkg/errors"
)

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name            string
		principal       float64
		rate            float64
		tenureYears     int
		wantPayment     float64
		wantPayable     float64
		wantInterest    float64
		wantPeriodCount int
	}{
		{
			name:            "standard five year loan",
			principal:       50000,
			rate:            7.5,
			tenureYears:     5,
			wantPayment:     1001.90,
			wantPayable:     60113.85,
			wantInterest:    10113.85,
			wantPeriodCount: 60,
		},
		{
			name:            "zero interest rate",
			principal:       100000,
			rate:            0,
			tenureYears:     10,
			wantPayment:     100000.0 / 120,
			wantPayable:     100000,
			wantInterest:    0,
			wantPeriodCount: 120,
		},
		{
			name:            "small loan at high rate",
			principal:       5000,
			rate:            25,
			tenureYears:     1,
			wantPayment:     475.22,
			wantPayable:     5702.65,
			wantInterest:    702.65,
			wantPeriodCount: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := ComputeSummary(tt.principal, tt.rate, tt.tenureYears)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantPayment, summary.MonthlyPayment, 0.01)
			assert.InDelta(t, tt.wantPayable, summary.TotalPayable, 0.01)
			assert.InDelta(t, tt.wantInterest, summary.TotalInterest, 0.01)
			assert.Equal(t, tt.wantPeriodCount, summary.PeriodCount)
			assert.Equal(t, tt.principal, summary.Principal)
		})
	}
}

func TestComputeSummary_Invariants(t *testing.T) {
	inputs := []struct {
		principal float64
		rate      float64
		years     int
	}{
		{50000, 7.5, 5},
		{100000, 0, 10},
		{5000, 25, 1},
		{750000, 3.2, 30},
		{12000, 12, 2},
	}

	for _, in := range inputs {
		summary, err := ComputeSummary(in.principal, in.rate, in.years)
		require.NoError(t, err)

		assert.Greater(t, summary.MonthlyPayment, 0.0)

		// Definitional: totalPayable is constructed as payment * periodCount.
		assert.Equal(t, summary.MonthlyPayment*float64(summary.PeriodCount), summary.TotalPayable)

		assert.InDelta(t, summary.TotalPayable-summary.Principal, summary.TotalInterest,
			summary.TotalPayable*1e-6)
	}
}

func TestComputeSummary_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		wantErr   error
	}{
		{"zero principal", 0, 7.5, 5, customError.ErrInvalidPrincipal},
		{"negative principal", -100, 7.5, 5, customError.ErrInvalidPrincipal},
		{"negative rate", 50000, -1, 5, customError.ErrInvalidRate},
		{"zero tenure", 50000, 7.5, 0, customError.ErrInvalidTenure},
		{"negative tenure", 50000, 7.5, -3, customError.ErrInvalidTenure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSummary(tt.principal, tt.rate, tt.years)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
