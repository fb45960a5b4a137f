package domain

import "time"

// ScheduleEntry is one period of an amortization schedule.
type ScheduleEntry struct {
	Period             int        `json:"period"`
	Month              time.Month `json:"month"`
	Year               int        `json:"year"`
	Payment            float64    `json:"payment"`
	PrincipalPortion   float64    `json:"principal"`
	InterestPortion    float64    `json:"interest"`
	OutstandingBalance float64    `json:"balance"`
}

// YearlyCheckpoints downsamples a schedule for charting: every 12th entry
// plus the final one.
func YearlyCheckpoints(schedule []ScheduleEntry) []ScheduleEntry {
	if len(schedule) == 0 {
		return nil
	}

	checkpoints := make([]ScheduleEntry, 0, len(schedule)/12+1)
	for _, entry := range schedule {
		if entry.Period%12 == 0 {
			checkpoints = append(checkpoints, entry)
		}
	}

	last := schedule[len(schedule)-1]
	if len(checkpoints) == 0 || checkpoints[len(checkpoints)-1].Period != last.Period {
		checkpoints = append(checkpoints, last)
	}

	return checkpoints
}
