package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldku_backend/internals/features/attendance/consolidation"
)

func TestBuildSummary(t *testing.T) {
	records := []consolidation.DayRecord{
		{Status: consolidation.StatusCheckedOut, TotalHours: 8},
		{Status: consolidation.StatusCheckedIn, TotalHours: 3.5},
		{
			Status: consolidation.StatusAbsent,
			Flags: []consolidation.Flag{
				{Type: consolidation.FlagAbsent, Severity: consolidation.SeverityError},
			},
		},
	}

	sum := BuildSummary(records)
	assert.Equal(t, 3, sum.TotalRoster)
	assert.Equal(t, 2, sum.Present)
	assert.Equal(t, 1, sum.Absent)
	assert.Equal(t, 1, sum.StillWorking)
	assert.Equal(t, 11.5, sum.TotalHours)
	assert.Equal(t, 1, sum.FlaggedErrors)
}

func TestBuildSummaryEmpty(t *testing.T) {
	sum := BuildSummary(nil)
	assert.Equal(t, 0, sum.TotalRoster)
	assert.Equal(t, 0.0, sum.TotalHours)
}
