package scheduler

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	"fieldku_backend/internals/features/attendance/attendance/model"
	"fieldku_backend/internals/features/attendance/consolidation"
)

// StartAutoCheckoutScheduler menutup sesi CHECKED_IN yang tertinggal dari hari
// sebelumnya. Checkout dipatok ke akhir hari check-in supaya total jam tidak
// membengkak, dan notes diberi marker supaya laporan bisa menandainya.
func StartAutoCheckoutScheduler(db *gorm.DB) {
	go func() {
		intervalMinutes := 60
		if v := getenvInt("AUTO_CHECKOUT_INTERVAL_MINUTES"); v > 0 {
			intervalMinutes = v
		}

		for {
			closeStaleSessions(db)
			time.Sleep(time.Duration(intervalMinutes) * time.Minute)
		}
	}()
}

func closeStaleSessions(db *gorm.DB) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stale []model.AttendanceSessionModel
	if err := db.
		Where("attendance_status = ? AND attendance_check_in_at < ?", constants.AttendanceCheckedIn, todayStart).
		Find(&stale).Error; err != nil {
		log.Println("[AutoCheckout] gagal ambil sesi stale:", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	closed := 0
	for _, s := range stale {
		if s.AttendanceCheckInAt == nil {
			continue
		}

		ci := *s.AttendanceCheckInAt
		endOfDay := time.Date(ci.Year(), ci.Month(), ci.Day(), 23, 59, 59, 0, ci.Location())
		hours := math.Round(endOfDay.Sub(ci).Hours()*100) / 100

		notes := s.AttendanceNotes
		if !strings.Contains(notes, consolidation.AutoCheckoutMarker) {
			marker := consolidation.AutoCheckoutMarker + " closed by scheduler"
			if notes == "" {
				notes = marker
			} else {
				notes = notes + "; " + marker
			}
		}

		if err := db.Model(&model.AttendanceSessionModel{}).
			Where("attendance_id = ?", s.AttendanceID).
			Updates(map[string]interface{}{
				"attendance_check_out_at": endOfDay,
				"attendance_total_hours":  hours,
				"attendance_status":       constants.AttendanceCheckedOut,
				"attendance_notes":        notes,
			}).Error; err != nil {
			log.Println("[AutoCheckout] gagal menutup sesi:", s.AttendanceID, err)
			continue
		}
		closed++
	}

	if closed > 0 {
		log.Printf("[AutoCheckout] %d sesi stale ditutup otomatis", closed)
	}
}

func getenvInt(key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return 0
	}
	return v
}
