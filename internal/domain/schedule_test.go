package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSchedule(periods int) []ScheduleEntry {
	schedule := make([]ScheduleEntry, periods)
	for i := range schedule {
		schedule[i] = ScheduleEntry{Period: i + 1}
	}
	return schedule
}

func TestYearlyCheckpoints(t *testing.T) {
	t.Run("empty schedule", func(t *testing.T) {
		assert.Nil(t, YearlyCheckpoints(nil))
	})

	t.Run("whole years", func(t *testing.T) {
		checkpoints := YearlyCheckpoints(makeSchedule(60))

		require.Len(t, checkpoints, 5)
		assert.Equal(t, 12, checkpoints[0].Period)
		assert.Equal(t, 60, checkpoints[4].Period)
	})

	t.Run("final entry off the year boundary", func(t *testing.T) {
		checkpoints := YearlyCheckpoints(makeSchedule(30))

		require.Len(t, checkpoints, 3)
		assert.Equal(t, 12, checkpoints[0].Period)
		assert.Equal(t, 24, checkpoints[1].Period)
		assert.Equal(t, 30, checkpoints[2].Period)
	})

	t.Run("shorter than one year", func(t *testing.T) {
		checkpoints := YearlyCheckpoints(makeSchedule(6))

		require.Len(t, checkpoints, 1)
		assert.Equal(t, 6, checkpoints[0].Period)
	})
}
