package sqlite

import (
	"context"
	"database/sql"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

type attendanceRepo struct {
	q querier
}

const upsertAttendanceSQL = `
INSERT INTO attendance
    (date, user_id, name, day, latitude, longitude,
     check_in_time, working_hours, attendance, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (date, user_id) DO UPDATE SET
    name          = excluded.name,
    day           = excluded.day,
    latitude      = excluded.latitude,
    longitude     = excluded.longitude,
    check_in_time = excluded.check_in_time,
    working_hours = excluded.working_hours,
    attendance    = excluded.attendance,
    status        = excluded.status,
    updated_at    = CURRENT_TIMESTAMP;
`

// UpsertRecord replaces the record at (date, user_id) wholesale. A nil
// latitude/longitude overwrites any previously stored coordinates with NULL.
func (r *attendanceRepo) UpsertRecord(ctx context.Context, rec domain.AttendanceRecord) error {
	_, err := r.q.ExecContext(ctx, upsertAttendanceSQL,
		rec.Date, rec.UserID, rec.Name, rec.Day,
		mapOptionalFloat(rec.Latitude), mapOptionalFloat(rec.Longitude),
		rec.CheckInTime, rec.WorkingHours, rec.Attendance, rec.Status,
	)
	return err
}

const getAttendanceSQL = `
SELECT date, user_id, name, day, latitude, longitude,
       check_in_time, working_hours, attendance, status,
       created_at, updated_at
FROM attendance
WHERE date = ? AND user_id = ?;
`

func (r *attendanceRepo) GetRecord(ctx context.Context, date, userID string) (domain.AttendanceRecord, error) {
	rec, err := scanAttendance(r.q.QueryRowContext(ctx, getAttendanceSQL, date, userID))
	if err != nil {
		return domain.AttendanceRecord{}, mapNotFound(err)
	}
	return rec, nil
}

const listAttendanceDatesSQL = `
SELECT DISTINCT date FROM attendance ORDER BY date DESC;
`

func (r *attendanceRepo) ListDates(ctx context.Context) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, listAttendanceDatesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

const listAttendanceByDateSQL = `
SELECT date, user_id, name, day, latitude, longitude,
       check_in_time, working_hours, attendance, status,
       created_at, updated_at
FROM attendance
WHERE date = ?
ORDER BY user_id;
`

func (r *attendanceRepo) ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	rows, err := r.q.QueryContext(ctx, listAttendanceByDateSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (domain.AttendanceRecord, error) {
	var (
		rec      domain.AttendanceRecord
		lat, lng sql.NullFloat64
	)
	err := row.Scan(
		&rec.Date, &rec.UserID, &rec.Name, &rec.Day, &lat, &lng,
		&rec.CheckInTime, &rec.WorkingHours, &rec.Attendance, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	rec.Latitude = mapNullFloatPtr(lat)
	rec.Longitude = mapNullFloatPtr(lng)
	return rec, nil
}
