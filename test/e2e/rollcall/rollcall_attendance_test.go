package rollcall_test

import (
	"testing"

	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

const reportDate = "2026-08-31"

// TestCheckInAndReadBack verifies an employee can record attendance and
// read their own record back, with the day of week derived from the date.
func TestCheckInAndReadBack(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	signUp(t, client, employeeEmail, employeeName, employeePassword, "employee")
	session := signIn(t, client, employeeEmail, employeePassword, "employee")

	lat, lng := -33.8688, 151.2093
	saved, err := session.CheckIn(t.Context(), rollcallsdk.CheckInRequest{
		Date:         reportDate,
		Latitude:     &lat,
		Longitude:    &lng,
		CheckInTime:  "08:55",
		WorkingHours: "8h",
		Attendance:   "Present",
		Status:       "On Time",
	})
	require.NoError(t, err, "Check-in should succeed")
	require.Equal(t, session.UserID(), saved.UserID)
	require.Equal(t, employeeName, saved.Name)
	require.Equal(t, "Monday", saved.Day, "Day should be derived from the date")

	record, err := session.Attendance(t.Context(), reportDate)
	require.NoError(t, err)
	require.Equal(t, "08:55", record.CheckInTime)
	require.NotNil(t, record.Latitude)
	require.InDelta(t, lat, *record.Latitude, 1e-9)
}

// TestRepeatCheckInOverwrites verifies a second check-in for the same date
// replaces the first record rather than adding a row.
func TestRepeatCheckInOverwrites(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	signUp(t, client, employeeEmail, employeeName, employeePassword, "employee")
	signUp(t, client, adminEmail, adminName, adminPassword, "admin")

	employee := signIn(t, client, employeeEmail, employeePassword, "employee")

	_, err := employee.CheckIn(t.Context(), rollcallsdk.CheckInRequest{
		Date:         reportDate,
		CheckInTime:  "08:55",
		WorkingHours: "8h",
		Attendance:   "Present",
		Status:       "On Time",
	})
	require.NoError(t, err)

	_, err = employee.CheckIn(t.Context(), rollcallsdk.CheckInRequest{
		Date:         reportDate,
		CheckInTime:  "09:30",
		WorkingHours: "7h",
		Attendance:   "Present",
		Status:       "Late",
	})
	require.NoError(t, err)

	record, err := employee.Attendance(t.Context(), reportDate)
	require.NoError(t, err)
	require.Equal(t, "09:30", record.CheckInTime)
	require.Equal(t, "Late", record.Status)

	// The admin report reflects the overwrite and holds a single row
	admin := signIn(t, client, adminEmail, adminPassword, "admin")

	report, err := admin.DailyReport(t.Context(), reportDate)
	require.NoError(t, err)
	require.Len(t, report.Records, 1, "Overwrite should not add a second row")
	require.Equal(t, "Late", report.Records[0].Status)
}

// TestDailyReportRequiresAdmin verifies employees cannot read the daily
// report.
func TestDailyReportRequiresAdmin(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	signUp(t, client, employeeEmail, employeeName, employeePassword, "employee")
	session := signIn(t, client, employeeEmail, employeePassword, "employee")

	_, err := session.DailyReport(t.Context(), reportDate)
	assertForbidden(t, err, "Employee should not read the report")
}

// TestAttendanceNotFound verifies reading a date with no record yields
// not_found.
func TestAttendanceNotFound(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	signUp(t, client, employeeEmail, employeeName, employeePassword, "employee")
	session := signIn(t, client, employeeEmail, employeePassword, "employee")

	_, err := session.Attendance(t.Context(), "2026-01-01")
	assertAPIError(t, err, rollcallsdk.ErrorCodeNotFound, "Missing record should 404")
}

// TestCheckInValidation verifies malformed records are rejected with
// invalid_record.
func TestCheckInValidation(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	signUp(t, client, employeeEmail, employeeName, employeePassword, "employee")
	session := signIn(t, client, employeeEmail, employeePassword, "employee")

	badLat := 120.0
	_, err := session.CheckIn(t.Context(), rollcallsdk.CheckInRequest{
		Date:         reportDate,
		Latitude:     &badLat,
		CheckInTime:  "08:55",
		WorkingHours: "8h",
		Attendance:   "Present",
		Status:       "On Time",
	})
	assertAPIError(t, err, rollcallsdk.ErrorCodeInvalidRecord, "Out-of-range latitude should be rejected")

	_, err = session.CheckIn(t.Context(), rollcallsdk.CheckInRequest{
		Date:         "31/08/2026",
		CheckInTime:  "08:55",
		WorkingHours: "8h",
		Attendance:   "Present",
		Status:       "On Time",
	})
	assertAPIError(t, err, rollcallsdk.ErrorCodeInvalidRecord, "Malformed date should be rejected")
}
