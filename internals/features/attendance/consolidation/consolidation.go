// Package consolidation merges raw attendance sessions into one record per
// user per calendar day, synthesizes absent placeholders from a roster, and
// attaches diagnostic flags. Pure in-memory transformation, no I/O.
package consolidation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status sesi / record (urutan prioritas merge ada di statusPriority)
const (
	StatusCheckedIn     = "CHECKED_IN"
	StatusCheckedOut    = "CHECKED_OUT"
	StatusEarlyCheckout = "EARLY_CHECKOUT"
	StatusLate          = "LATE"
	StatusAbsent        = "ABSENT"
)

// Jenis flag diagnostik
const (
	FlagLate             = "LATE"
	FlagEarlyCheckout    = "EARLY_CHECKOUT"
	FlagLongDay          = "LONG_DAY"
	FlagAutoCheckout     = "AUTO_CHECKOUT"
	FlagNoActivity       = "NO_ACTIVITY"
	FlagMissingCheckout  = "MISSING_CHECKOUT"
	FlagMultipleSessions = "MULTIPLE_SESSIONS"
	FlagAbsent           = "ABSENT"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Batas jam untuk flag (jam lokal)
const (
	lateCheckInHour   = 11
	earlyCheckoutHour = 16
	longDayHours      = 12.0
)

// AutoCheckoutMarker ditulis job auto-checkout ke notes; flag AUTO_CHECKOUT
// mendeteksi substring ini.
const AutoCheckoutMarker = "[AUTO CHECKOUT]"

const absentNote = "No attendance record for this date"

type Flag struct {
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

// Session adalah satu pasangan check-in/check-out mentah dari storage.
type Session struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CheckInAt        *time.Time `json:"check_in_at"`
	CheckOutAt       *time.Time `json:"check_out_at"`
	CheckInLocation  Location  `json:"check_in_location"`
	CheckOutLocation Location  `json:"check_out_location"`
	TotalHours       *float64  `json:"total_hours"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
}

type RosterMember struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// DayRecord adalah hasil konsolidasi: satu user, satu tanggal. Tidak pernah
// disimpan; dibangun ulang setiap request laporan.
type DayRecord struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	UserName         string     `json:"user_name"`
	Date             string     `json:"date"` // YYYY-MM-DD (hari lokal)
	EarliestCheckIn  *time.Time `json:"earliest_check_in"`
	LatestCheckOut   *time.Time `json:"latest_check_out"`
	CheckInLocation  Location   `json:"check_in_location"`
	CheckOutLocation Location   `json:"check_out_location"`
	TotalHours       float64    `json:"total_hours"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`
	Sessions         []Session  `json:"sessions"`
	Flags            []Flag     `json:"flags"`
	ActivityCount    int        `json:"activity_count"`
}

// InvalidInputError: sesi tidak bisa dikelompokkan (mis. user_id kosong).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "consolidation: invalid input: " + e.Reason
}

// Prioritas status saat merge: angka lebih besar menang.
var statusPriority = map[string]int{
	StatusCheckedIn:     5,
	StatusLate:          4,
	StatusEarlyCheckout: 3,
	StatusCheckedOut:    2,
	StatusAbsent:        1,
}

// AbsentRecordID membuat ID deterministik untuk placeholder absen; prefix
// "absent-" tidak pernah bentrok dengan uuid sesi asli.
func AbsentRecordID(userID string, date time.Time) string {
	return fmt.Sprintf("absent-%s-%s", userID, date.Format("2006-01-02"))
}

func IsAbsentRecordID(id string) bool {
	return strings.HasPrefix(id, "absent-")
}

// Consolidate mengelompokkan sesi per (user, tanggal lokal), me-merge
// sesuai aturan, mensintesis placeholder absen untuk anggota roster yang
// tidak punya sesi di targetDate, lalu menurunkan flag. asOf dipakai hanya
// untuk flag MISSING_CHECKOUT supaya fungsi tetap deterministik.
func Consolidate(
	sessions []Session,
	roster []RosterMember,
	targetDate time.Time,
	activityCounts map[string]int,
	asOf time.Time,
) ([]DayRecord, error) {
	loc := targetDate.Location()

	rosterNames := make(map[string]string, len(roster))
	for _, m := range roster {
		rosterNames[m.UserID] = m.UserName
	}

	records := make(map[string]*DayRecord)
	order := make([]string, 0, len(sessions)) // first-seen order, output deterministik

	for _, s := range sessions {
		if strings.TrimSpace(s.UserID) == "" {
			return nil, &InvalidInputError{Reason: "session has no userId"}
		}
		if s.CheckInAt == nil {
			return nil, &InvalidInputError{Reason: "session " + s.ID + " has no checkInAt"}
		}

		day := s.CheckInAt.In(loc).Format("2006-01-02")
		key := s.UserID + "|" + day

		rec, ok := records[key]
		if !ok {
			ci := *s.CheckInAt
			rec = &DayRecord{
				ID:              s.ID,
				UserID:          s.UserID,
				UserName:        rosterNames[s.UserID],
				Date:            day,
				EarliestCheckIn: &ci,
				CheckInLocation: s.CheckInLocation,
				Status:          s.Status,
				Notes:           s.Notes,
			}
			if s.CheckOutAt != nil {
				co := *s.CheckOutAt
				rec.LatestCheckOut = &co
				rec.CheckOutLocation = s.CheckOutLocation
			}
			rec.TotalHours = derefHours(s.TotalHours)
			rec.Sessions = []Session{s}
			records[key] = rec
			order = append(order, key)
			continue
		}

		// Merge ke record yang sudah ada.
		if s.CheckInAt.Before(*rec.EarliestCheckIn) {
			ci := *s.CheckInAt
			rec.EarliestCheckIn = &ci
			rec.CheckInLocation = s.CheckInLocation // lokasi ikut sesi paling awal
		}
		if s.CheckOutAt != nil && (rec.LatestCheckOut == nil || s.CheckOutAt.After(*rec.LatestCheckOut)) {
			co := *s.CheckOutAt
			rec.LatestCheckOut = &co
			rec.CheckOutLocation = s.CheckOutLocation
		}
		rec.TotalHours += derefHours(s.TotalHours)
		if statusPriority[s.Status] > statusPriority[rec.Status] {
			rec.Status = s.Status
		}
		if s.Notes != "" && !strings.Contains(rec.Notes, s.Notes) {
			if rec.Notes == "" {
				rec.Notes = s.Notes
			} else {
				rec.Notes = rec.Notes + "; " + s.Notes
			}
		}
		rec.Sessions = append(rec.Sessions, s)
	}

	out := make([]DayRecord, 0, len(order)+len(roster))
	for _, key := range order {
		rec := records[key]
		rec.Flags = deriveFlags(rec, activityCounts[rec.UserID], asOf, loc)
		out = append(out, *rec)
	}

	// Sintesis placeholder absen untuk anggota roster tanpa sesi di targetDate.
	targetDay := targetDate.In(loc).Format("2006-01-02")
	for _, m := range roster {
		if _, ok := records[m.UserID+"|"+targetDay]; ok {
			continue
		}
		out = append(out, DayRecord{
			ID:         AbsentRecordID(m.UserID, targetDate),
			UserID:     m.UserID,
			UserName:   m.UserName,
			Date:       targetDay,
			TotalHours: 0,
			Status:     StatusAbsent,
			Notes:      absentNote,
			Sessions:   []Session{},
			Flags: []Flag{{
				Type:     FlagAbsent,
				Message:  absentNote,
				Severity: SeverityError,
			}},
		})
	}

	return out, nil
}

func deriveFlags(rec *DayRecord, activityCount int, asOf time.Time, loc *time.Location) []Flag {
	flags := []Flag{}

	if rec.EarliestCheckIn != nil {
		ci := rec.EarliestCheckIn.In(loc)
		if ci.Hour() >= lateCheckInHour {
			flags = append(flags, Flag{
				Type:     FlagLate,
				Message:  fmt.Sprintf("Checked in at %s", ci.Format("15:04")),
				Severity: SeverityWarning,
			})
		}
	}

	if rec.LatestCheckOut != nil {
		co := rec.LatestCheckOut.In(loc)
		if co.Hour() < earlyCheckoutHour {
			flags = append(flags, Flag{
				Type:     FlagEarlyCheckout,
				Message:  fmt.Sprintf("Checked out at %s", co.Format("15:04")),
				Severity: SeverityWarning,
			})
		}
	}

	if rec.TotalHours > longDayHours {
		flags = append(flags, Flag{
			Type:     FlagLongDay,
			Message:  fmt.Sprintf("Worked %.2f hours", rec.TotalHours),
			Severity: SeverityWarning,
		})
	}

	if strings.Contains(rec.Notes, AutoCheckoutMarker) {
		flags = append(flags, Flag{
			Type:     FlagAutoCheckout,
			Message:  "Session was closed automatically",
			Severity: SeverityInfo,
		})
	}

	if activityCount == 0 {
		sev := SeverityWarning
		if rec.Status == StatusCheckedIn {
			sev = SeverityError // masih on the clock tanpa aktivitas
		}
		flags = append(flags, Flag{
			Type:     FlagNoActivity,
			Message:  "No activity logged for this date",
			Severity: sev,
		})
	}

	if rec.Status == StatusCheckedIn && rec.EarliestCheckIn != nil {
		ciDay := startOfDay(rec.EarliestCheckIn.In(loc))
		asOfDay := startOfDay(asOf.In(loc))
		if daysBetween(ciDay, asOfDay) > 1 {
			flags = append(flags, Flag{
				Type:     FlagMissingCheckout,
				Message:  "Still checked in from a previous day",
				Severity: SeverityError,
			})
		}
	}

	if len(rec.Sessions) > 1 {
		flags = append(flags, Flag{
			Type:     FlagMultipleSessions,
			Message:  fmt.Sprintf("%d sessions on this date", len(rec.Sessions)),
			Severity: SeverityInfo,
		})
	}

	return flags
}

// SortByCheckInDesc mengurutkan stabil: check-in terbaru dulu, record absen
// (tanpa check-in) di belakang, tie-break user_id supaya deterministik.
func SortByCheckInDesc(records []DayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].EarliestCheckIn, records[j].EarliestCheckIn
		switch {
		case a == nil && b == nil:
			return records[i].UserID < records[j].UserID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return records[i].UserID < records[j].UserID
		default:
			return a.After(*b)
		}
	})
}

func derefHours(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
