package sqlite

import (
	"context"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

type dailyRecordsRepo struct {
	q querier
}

const upsertDailyRecordSQL = `
INSERT INTO daily_records
    (date, user_id, name, day, check_in_time, working_hours, attendance, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (date, user_id) DO UPDATE SET
    name          = excluded.name,
    day           = excluded.day,
    check_in_time = excluded.check_in_time,
    working_hours = excluded.working_hours,
    attendance    = excluded.attendance,
    status        = excluded.status,
    updated_at    = CURRENT_TIMESTAMP;
`

func (r *dailyRecordsRepo) UpsertRecord(ctx context.Context, rec domain.DailyRecord) error {
	_, err := r.q.ExecContext(ctx, upsertDailyRecordSQL,
		rec.Date, rec.UserID, rec.Name, rec.Day,
		rec.CheckInTime, rec.WorkingHours, rec.Attendance, rec.Status,
	)
	return err
}

const getDailyRecordSQL = `
SELECT date, user_id, name, day, check_in_time, working_hours,
       attendance, status, created_at, updated_at
FROM daily_records
WHERE date = ? AND user_id = ?;
`

func (r *dailyRecordsRepo) GetRecord(ctx context.Context, date, userID string) (domain.DailyRecord, error) {
	var rec domain.DailyRecord
	err := r.q.QueryRowContext(ctx, getDailyRecordSQL, date, userID).Scan(
		&rec.Date, &rec.UserID, &rec.Name, &rec.Day,
		&rec.CheckInTime, &rec.WorkingHours, &rec.Attendance, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.DailyRecord{}, mapNotFound(err)
	}
	return rec, nil
}

const listDailyRecordsByDateSQL = `
SELECT date, user_id, name, day, check_in_time, working_hours,
       attendance, status, created_at, updated_at
FROM daily_records
WHERE date = ?
ORDER BY user_id;
`

func (r *dailyRecordsRepo) ListByDate(ctx context.Context, date string) ([]domain.DailyRecord, error) {
	rows, err := r.q.QueryContext(ctx, listDailyRecordsByDateSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.DailyRecord
	for rows.Next() {
		var rec domain.DailyRecord
		err := rows.Scan(
			&rec.Date, &rec.UserID, &rec.Name, &rec.Day,
			&rec.CheckInTime, &rec.WorkingHours, &rec.Attendance, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

const missingDailyRecordsSQL = `
SELECT a.user_id
FROM attendance a
LEFT JOIN daily_records d ON d.date = a.date AND d.user_id = a.user_id
WHERE a.date = ? AND d.user_id IS NULL
ORDER BY a.user_id;
`

// MissingForDate lists users whose attendance write landed but whose
// reporting mirror did not, so housekeeping can backfill them.
func (r *dailyRecordsRepo) MissingForDate(ctx context.Context, date string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, missingDailyRecordsSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
