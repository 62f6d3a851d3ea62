package constants

// Status sesi absensi
const (
	AttendanceCheckedIn     = "CHECKED_IN"
	AttendanceCheckedOut    = "CHECKED_OUT"
	AttendanceEarlyCheckout = "EARLY_CHECKOUT"
	AttendanceLate          = "LATE"
	AttendanceAbsent        = "ABSENT"
)

// Kategori activity log
const (
	ActivityTicketWork = "TICKET_WORK"
	ActivitySiteVisit  = "SITE_VISIT"
	ActivityTraining   = "TRAINING"
	ActivityMeeting    = "MEETING"
	ActivityAdminWork  = "ADMIN_WORK"
	ActivityOther      = "OTHER"
)

func IsValidActivityType(t string) bool {
	switch t {
	case ActivityTicketWork, ActivitySiteVisit, ActivityTraining,
		ActivityMeeting, ActivityAdminWork, ActivityOther:
		return true
	}
	return false
}

// Status tiket helpdesk
const (
	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
	TicketClosed     = "CLOSED"
)
