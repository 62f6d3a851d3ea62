package consolidation

import (
	"math"
	"sort"
	"time"
)

// Gap lebih lama dari ini yang dilaporkan.
const GapThresholdMinutes = 30

// Activity adalah proyeksi minimal activity log untuk perhitungan gap.
type Activity struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type Gap struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

// ComputeGaps mencari jeda antar aktivitas berurutan dalam satu hari.
// Input di-sort internal by start ascending; akhir efektif aktivitas =
// endTime kalau ada, kalau tidak startTime-nya.
func ComputeGaps(activities []Activity) []Gap {
	if len(activities) < 2 {
		return []Gap{}
	}

	sorted := make([]Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	gaps := []Gap{}
	for i := 0; i < len(sorted)-1; i++ {
		effectiveEnd := sorted[i].StartTime
		if sorted[i].EndTime != nil {
			effectiveEnd = *sorted[i].EndTime
		}

		next := sorted[i+1].StartTime
		// bandingkan durasi float supaya 30m59s tidak ter-truncate jadi 30
		minutes := next.Sub(effectiveEnd).Minutes()
		if minutes > GapThresholdMinutes {
			gaps = append(gaps, Gap{
				Start:           effectiveEnd,
				End:             next,
				DurationMinutes: int(math.Round(minutes)),
			})
		}
	}
	return gaps
}
