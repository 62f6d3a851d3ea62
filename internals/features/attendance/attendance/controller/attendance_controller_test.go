package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db, mock
}

func newTestApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	ctrl := NewAttendanceController(db)
	app.Post("/attendance/re-check-in", ctrl.ReCheckIn)
	return app
}

// Sesi lama tidak boleh dibuka kembali selama masih ada sesi terbuka;
// kalau tidak, satu user bisa punya dua sesi CHECKED_IN sekaligus.
func TestReCheckInRejectsWhileSessionOpen(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	openRows := sqlmock.NewRows([]string{"attendance_id", "attendance_user_id", "attendance_status"}).
		AddRow(uuid.NewString(), userID.String(), "CHECKED_IN")
	mock.ExpectQuery(`SELECT (.+) FROM "attendance_sessions"`).
		WillReturnRows(openRows)

	app := newTestApp(db, userID)
	req := httptest.NewRequest(fiber.MethodPost, "/attendance/re-check-in", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReCheckInWithoutClosedSessionToday(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	// Tidak ada sesi terbuka, dan tidak ada sesi tertutup hari ini.
	mock.ExpectQuery(`SELECT (.+) FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}))

	app := newTestApp(db, userID)
	req := httptest.NewRequest(fiber.MethodPost, "/attendance/re-check-in", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
