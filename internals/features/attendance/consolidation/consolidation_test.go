package consolidation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func at(day string, hour, min int) *time.Time {
	d, err := time.ParseInLocation("2006-01-02", day, jakarta)
	if err != nil {
		panic(err)
	}
	t := d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	return &t
}

func hours(v float64) *float64 { return &v }

func session(id, userID string, in, out *time.Time, total *float64, status, notes string) Session {
	return Session{
		ID:         id,
		UserID:     userID,
		CheckInAt:  in,
		CheckOutAt: out,
		TotalHours: total,
		Status:     status,
		Notes:      notes,
	}
}

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, jakarta)
	if err != nil {
		panic(err)
	}
	return d
}

func findFlag(rec DayRecord, typ string) *Flag {
	for i := range rec.Flags {
		if rec.Flags[i].Type == typ {
			return &rec.Flags[i]
		}
	}
	return nil
}

func TestConsolidateMergesTwoSessionsOneDay(t *testing.T) {
	target := day("2024-06-01")
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, ""),
		session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 18, 30), hours(5.5), StatusCheckedOut, ""),
	}

	records, err := Consolidate(sessions, nil, target, nil, day("2024-06-02"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "2024-06-01", rec.Date)
	assert.Equal(t, 9.5, rec.TotalHours)
	assert.True(t, rec.EarliestCheckIn.Equal(*at("2024-06-01", 8, 0)))
	assert.True(t, rec.LatestCheckOut.Equal(*at("2024-06-01", 18, 30)))
	assert.Len(t, rec.Sessions, 2)

	assert.Equal(t, StatusCheckedOut, rec.Status)
	// checkout jam 18 >= 16: bukan early checkout
	assert.Nil(t, findFlag(rec, FlagEarlyCheckout))

	multi := findFlag(rec, FlagMultipleSessions)
	require.NotNil(t, multi)
	assert.Equal(t, SeverityInfo, multi.Severity)
	assert.Contains(t, multi.Message, "2 sessions")
}

func TestConsolidateIdempotentOnOwnSessions(t *testing.T) {
	target := day("2024-06-01")
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, "pagi"),
		session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 18, 30), hours(5.5), StatusCheckedOut, "sore"),
	}

	first, err := Consolidate(sessions, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := Consolidate(first[0].Sessions, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].TotalHours, second[0].TotalHours)
	assert.Equal(t, first[0].Status, second[0].Status)
	assert.Equal(t, first[0].Notes, second[0].Notes)
	assert.True(t, first[0].EarliestCheckIn.Equal(*second[0].EarliestCheckIn))
	assert.True(t, first[0].LatestCheckOut.Equal(*second[0].LatestCheckOut))
}

func TestConsolidateOnePerUserPerDay(t *testing.T) {
	target := day("2024-06-01")
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, ""),
		session("s2", "u2", at("2024-06-01", 9, 0), nil, nil, StatusCheckedIn, ""),
		session("s3", "u1", at("2024-05-31", 8, 0), at("2024-05-31", 17, 0), hours(9), StatusCheckedOut, ""),
	}

	records, err := Consolidate(sessions, nil, target, nil, day("2024-06-02"))
	require.NoError(t, err)
	// (u1, 06-01), (u2, 06-01), (u1, 05-31)
	assert.Len(t, records, 3)
}

func TestTotalHoursOrderIndependent(t *testing.T) {
	target := day("2024-06-01")
	a := session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, "")
	b := session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 16, 30), hours(3.5), StatusCheckedOut, "")

	r1, err := Consolidate([]Session{a, b}, nil, target, nil, day("2024-06-02"))
	require.NoError(t, err)
	r2, err := Consolidate([]Session{b, a}, nil, target, nil, day("2024-06-02"))
	require.NoError(t, err)

	assert.Equal(t, r1[0].TotalHours, r2[0].TotalHours)
	assert.Equal(t, 7.5, r1[0].TotalHours)
}

func TestStatusPriorityBothOrders(t *testing.T) {
	target := day("2024-06-01")
	open := session("s1", "u1", at("2024-06-01", 8, 0), nil, nil, StatusCheckedIn, "")
	closed := session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 17, 0), hours(4), StatusCheckedOut, "")

	for _, order := range [][]Session{{open, closed}, {closed, open}} {
		records, err := Consolidate(order, nil, target, map[string]int{"u1": 1}, day("2024-06-01"))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, StatusCheckedIn, records[0].Status)
	}
}

func TestEarlyCheckoutBeatsCheckedOut(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusEarlyCheckout, ""),
		session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 17, 0), hours(4), StatusCheckedOut, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	// EARLY_CHECKOUT prioritas 3, CHECKED_OUT 2
	assert.Equal(t, StatusEarlyCheckout, records[0].Status)
}

func TestAbsentSynthesis(t *testing.T) {
	target := day("2024-06-01")
	roster := []RosterMember{
		{UserID: "u1", UserName: "Andi"},
		{UserID: "u9", UserName: "Budi"},
	}
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 17, 0), hours(9), StatusCheckedOut, ""),
	}

	records, err := Consolidate(sessions, roster, target, map[string]int{"u1": 2}, day("2024-06-02"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	absent := records[1]
	assert.Equal(t, "absent-u9-2024-06-01", absent.ID)
	assert.Equal(t, "u9", absent.UserID)
	assert.Equal(t, "Budi", absent.UserName)
	assert.Equal(t, StatusAbsent, absent.Status)
	assert.Equal(t, 0.0, absent.TotalHours)
	assert.Nil(t, absent.EarliestCheckIn)
	assert.Empty(t, absent.Sessions)

	flag := findFlag(absent, FlagAbsent)
	require.NotNil(t, flag)
	assert.Equal(t, SeverityError, flag.Severity)
}

func TestRosterMemberWithSessionNotAbsent(t *testing.T) {
	target := day("2024-06-01")
	roster := []RosterMember{{UserID: "u1", UserName: "Andi"}}
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), nil, nil, StatusCheckedIn, ""),
	}

	records, err := Consolidate(sessions, roster, target, map[string]int{"u1": 1}, day("2024-06-01"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Andi", records[0].UserName)
	assert.NotEqual(t, StatusAbsent, records[0].Status)
}

func TestInvalidInput(t *testing.T) {
	target := day("2024-06-01")

	_, err := Consolidate([]Session{
		session("s1", "", at("2024-06-01", 8, 0), nil, nil, StatusCheckedIn, ""),
	}, nil, target, nil, target)
	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))

	_, err = Consolidate([]Session{
		session("s1", "u1", nil, nil, nil, StatusCheckedIn, ""),
	}, nil, target, nil, target)
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Error(), "s1")
}

func TestNotesAppendWithDedup(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, "pagi"),
		session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 17, 0), hours(4), StatusCheckedOut, "sore"),
		session("s3", "u1", at("2024-06-01", 18, 0), at("2024-06-01", 19, 0), hours(1), StatusCheckedOut, "pagi"),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	assert.Equal(t, "pagi; sore", records[0].Notes)
}

func TestLateFlag(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 11, 0), at("2024-06-01", 17, 0), hours(6), StatusCheckedOut, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)

	flag := findFlag(records[0], FlagLate)
	require.NotNil(t, flag)
	assert.Equal(t, SeverityWarning, flag.Severity)
	assert.Contains(t, flag.Message, "11:00")
}

func TestNoLateFlagBeforeEleven(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 10, 59), at("2024-06-01", 17, 0), hours(6), StatusCheckedOut, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	assert.Nil(t, findFlag(records[0], FlagLate))
}

func TestEarlyCheckoutFlag(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 15, 59), hours(7.98), StatusEarlyCheckout, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	require.NotNil(t, findFlag(records[0], FlagEarlyCheckout))

	records, err = Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 16, 0), hours(8), StatusCheckedOut, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	assert.Nil(t, findFlag(records[0], FlagEarlyCheckout))
}

func TestLongDayFlag(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 6, 0), at("2024-06-01", 18, 30), hours(12.5), StatusCheckedOut, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)

	flag := findFlag(records[0], FlagLongDay)
	require.NotNil(t, flag)
	assert.Contains(t, flag.Message, "12.50")
}

func TestAutoCheckoutFlag(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 23, 59), hours(8),
			StatusCheckedOut, AutoCheckoutMarker+" closed by scheduler"),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)

	flag := findFlag(records[0], FlagAutoCheckout)
	require.NotNil(t, flag)
	assert.Equal(t, SeverityInfo, flag.Severity)
}

func TestNoActivitySeverityDependsOnStatus(t *testing.T) {
	target := day("2024-06-01")

	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), nil, nil, StatusCheckedIn, ""),
	}, nil, target, nil, day("2024-06-01"))
	require.NoError(t, err)
	flag := findFlag(records[0], FlagNoActivity)
	require.NotNil(t, flag)
	assert.Equal(t, SeverityError, flag.Severity)

	records, err = Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 17, 0), hours(9), StatusCheckedOut, ""),
	}, nil, target, nil, day("2024-06-02"))
	require.NoError(t, err)
	flag = findFlag(records[0], FlagNoActivity)
	require.NotNil(t, flag)
	assert.Equal(t, SeverityWarning, flag.Severity)
}

func TestMissingCheckoutUsesAsOf(t *testing.T) {
	target := day("2024-06-01")
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), nil, nil, StatusCheckedIn, ""),
	}

	// asOf = hari berikutnya: belum dianggap missing
	records, err := Consolidate(sessions, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	assert.Nil(t, findFlag(records[0], FlagMissingCheckout))

	// asOf = dua hari kemudian: missing
	records, err = Consolidate(sessions, nil, target, map[string]int{"u1": 1}, day("2024-06-03"))
	require.NoError(t, err)
	flag := findFlag(records[0], FlagMissingCheckout)
	require.NotNil(t, flag)
	assert.Equal(t, SeverityError, flag.Severity)
}

func TestMultipleSessionsOnlyWhenMoreThanOne(t *testing.T) {
	target := day("2024-06-01")
	records, err := Consolidate([]Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 17, 0), hours(9), StatusCheckedOut, ""),
	}, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	assert.Nil(t, findFlag(records[0], FlagMultipleSessions))
}

func TestConsolidateDeterministic(t *testing.T) {
	target := day("2024-06-01")
	roster := []RosterMember{
		{UserID: "u3", UserName: "C"},
		{UserID: "u2", UserName: "B"},
	}
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, ""),
		session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 17, 0), hours(4), StatusCheckedOut, ""),
	}

	r1, err := Consolidate(sessions, roster, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	r2, err := Consolidate(sessions, roster, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestLocationAdoption(t *testing.T) {
	target := day("2024-06-01")
	lat1, lng1 := -6.2, 106.8
	lat2, lng2 := -6.3, 106.9

	sessions := []Session{
		session("s2", "u1", at("2024-06-01", 13, 0), at("2024-06-01", 17, 0), hours(4), StatusCheckedOut, ""),
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, ""),
	}
	sessions[0].CheckInLocation = Location{Latitude: &lat2, Longitude: &lng2}
	sessions[0].CheckOutLocation = Location{Latitude: &lat2, Longitude: &lng2}
	sessions[1].CheckInLocation = Location{Latitude: &lat1, Longitude: &lng1}
	sessions[1].CheckOutLocation = Location{Latitude: &lat1, Longitude: &lng1}

	records, err := Consolidate(sessions, nil, target, map[string]int{"u1": 1}, day("2024-06-02"))
	require.NoError(t, err)
	rec := records[0]

	// check-in location ikut sesi paling awal, check-out ikut paling akhir
	assert.Equal(t, lat1, *rec.CheckInLocation.Latitude)
	assert.Equal(t, lat2, *rec.CheckOutLocation.Latitude)
}

func TestAbsentRecordID(t *testing.T) {
	id := AbsentRecordID("u9", day("2024-06-01"))
	assert.Equal(t, "absent-u9-2024-06-01", id)
	assert.True(t, IsAbsentRecordID(id))
	assert.False(t, IsAbsentRecordID("5f1c8e6a-0000-0000-0000-000000000000"))
}

func TestSortByCheckInDesc(t *testing.T) {
	target := day("2024-06-01")
	roster := []RosterMember{
		{UserID: "zz", UserName: "Z"},
		{UserID: "aa", UserName: "A"},
	}
	sessions := []Session{
		session("s1", "u1", at("2024-06-01", 8, 0), at("2024-06-01", 12, 0), hours(4), StatusCheckedOut, ""),
		session("s2", "u2", at("2024-06-01", 10, 0), nil, nil, StatusCheckedIn, ""),
	}

	records, err := Consolidate(sessions, roster, target, map[string]int{"u1": 1, "u2": 1}, day("2024-06-01"))
	require.NoError(t, err)
	SortByCheckInDesc(records)

	require.Len(t, records, 4)
	assert.Equal(t, "u2", records[0].UserID) // check-in terbaru dulu
	assert.Equal(t, "u1", records[1].UserID)
	assert.Equal(t, "aa", records[2].UserID) // absen di belakang, tie-break user_id
	assert.Equal(t, "zz", records[3].UserID)
}
