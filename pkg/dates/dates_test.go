package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		n         int
		wantMonth time.Month
		wantYear  int
	}{
		{"same year", 2025, time.January, 3, time.April, 2025},
		{"zero months", 2025, time.June, 0, time.June, 2025},
		{"single rollover", 2024, time.November, 2, time.January, 2025},
		{"december boundary", 2024, time.December, 1, time.January, 2025},
		{"multiple years", 2025, time.March, 60, time.March, 2030},
		{"full year", 2025, time.July, 12, time.July, 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := AddMonths(tt.year, tt.month, tt.n)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("2025-08")
	require.NoError(t, err)
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 2025, parsed.Year())

	_, err = ParseMonth("08/2025")
	assert.Error(t, err)

	_, err = ParseMonth("")
	assert.Error(t, err)
}
