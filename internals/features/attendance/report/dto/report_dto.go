package dto

import (
	"fieldku_backend/internals/features/attendance/consolidation"
)

// DailyReportSummary dihitung dari records hasil konsolidasi.
type DailyReportSummary struct {
	TotalRoster   int     `json:"total_roster"`
	Present       int     `json:"present"`
	Absent        int     `json:"absent"`
	StillWorking  int     `json:"still_working"`
	TotalHours    float64 `json:"total_hours"`
	FlaggedErrors int     `json:"flagged_errors"`
}

type DailyReportResponse struct {
	Date    string                    `json:"date"`
	Summary DailyReportSummary        `json:"summary"`
	Records []consolidation.DayRecord `json:"records"`
}

type RangeReportResponse struct {
	UserID  string                    `json:"user_id"`
	From    string                    `json:"from"`
	To      string                    `json:"to"`
	Records []consolidation.DayRecord `json:"records"`
}

type DayDetailResponse struct {
	Record     consolidation.DayRecord  `json:"record"`
	Activities []consolidation.Activity `json:"activities"`
	Gaps       []consolidation.Gap      `json:"gaps"`
}

func BuildSummary(records []consolidation.DayRecord) DailyReportSummary {
	sum := DailyReportSummary{}
	for _, r := range records {
		switch r.Status {
		case consolidation.StatusAbsent:
			sum.Absent++
		case consolidation.StatusCheckedIn:
			sum.Present++
			sum.StillWorking++
		default:
			sum.Present++
		}
		sum.TotalHours += r.TotalHours
		for _, f := range r.Flags {
			if f.Severity == consolidation.SeverityError {
				sum.FlaggedErrors++
			}
		}
	}
	sum.TotalRoster = len(records)
	return sum
}
