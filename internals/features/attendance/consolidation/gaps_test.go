package consolidation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activity(id string, start *time.Time, end *time.Time) Activity {
	a := Activity{ID: id, Title: id, StartTime: *start}
	a.EndTime = end
	return a
}

func TestComputeGapsFindsLongGap(t *testing.T) {
	// 09:00-10:00, lalu 11:00-12:00: gap 60 menit
	acts := []Activity{
		activity("a1", at("2024-06-01", 9, 0), at("2024-06-01", 10, 0)),
		activity("a2", at("2024-06-01", 11, 0), at("2024-06-01", 12, 0)),
	}

	gaps := ComputeGaps(acts)
	require.Len(t, gaps, 1)
	assert.Equal(t, 60, gaps[0].DurationMinutes)
	assert.True(t, gaps[0].Start.Equal(*at("2024-06-01", 10, 0)))
	assert.True(t, gaps[0].End.Equal(*at("2024-06-01", 11, 0)))
}

func TestComputeGapsIgnoresShortGap(t *testing.T) {
	acts := []Activity{
		activity("a1", at("2024-06-01", 9, 0), at("2024-06-01", 10, 0)),
		activity("a2", at("2024-06-01", 10, 15), at("2024-06-01", 11, 0)),
	}
	assert.Empty(t, ComputeGaps(acts))
}

func TestComputeGapsThresholdIsExclusive(t *testing.T) {
	// tepat 30 menit bukan gap
	acts := []Activity{
		activity("a1", at("2024-06-01", 9, 0), at("2024-06-01", 10, 0)),
		activity("a2", at("2024-06-01", 10, 30), at("2024-06-01", 11, 0)),
	}
	assert.Empty(t, ComputeGaps(acts))

	acts[1].StartTime = *at("2024-06-01", 10, 31)
	gaps := ComputeGaps(acts)
	require.Len(t, gaps, 1)
	assert.Equal(t, 31, gaps[0].DurationMinutes)
}

func TestComputeGapsCountsSeconds(t *testing.T) {
	// 30m59s melebihi ambang 30 menit; jangan ter-truncate jadi 30
	end := at("2024-06-01", 10, 0)
	nextStart := end.Add(30*time.Minute + 59*time.Second)
	acts := []Activity{
		activity("a1", at("2024-06-01", 9, 0), end),
		{ID: "a2", Title: "a2", StartTime: nextStart},
	}

	gaps := ComputeGaps(acts)
	require.Len(t, gaps, 1)
	assert.Equal(t, 31, gaps[0].DurationMinutes)
}

func TestComputeGapsSortsInput(t *testing.T) {
	acts := []Activity{
		activity("a2", at("2024-06-01", 11, 0), at("2024-06-01", 12, 0)),
		activity("a1", at("2024-06-01", 9, 0), at("2024-06-01", 10, 0)),
	}
	gaps := ComputeGaps(acts)
	require.Len(t, gaps, 1)
	assert.Equal(t, 60, gaps[0].DurationMinutes)
}

func TestComputeGapsOpenEndedActivity(t *testing.T) {
	// tanpa end_time, akhir efektif = start_time
	acts := []Activity{
		activity("a1", at("2024-06-01", 9, 0), nil),
		activity("a2", at("2024-06-01", 10, 0), at("2024-06-01", 11, 0)),
	}
	gaps := ComputeGaps(acts)
	require.Len(t, gaps, 1)
	assert.Equal(t, 60, gaps[0].DurationMinutes)
}

func TestComputeGapsTooFewActivities(t *testing.T) {
	assert.Empty(t, ComputeGaps(nil))
	assert.Empty(t, ComputeGaps([]Activity{
		activity("a1", at("2024-06-01", 9, 0), at("2024-06-01", 10, 0)),
	}))
}
