package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/pkg/slogx"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord means the check-in payload failed validation. The message
// names the offending field.
var ErrInvalidRecord = errors.New("invalid_record")

// AttendanceService records check-ins. Each record and its reporting mirror
// are written in one transaction, so both land or neither does.
type AttendanceService struct {
	Store    store.Store
	validate *validator.Validate
}

func NewAttendanceService(st store.Store) *AttendanceService {
	return &AttendanceService{
		Store:    st,
		validate: validator.New(),
	}
}

// RecordAttendance validates and persists a check-in at (date, user id),
// replacing any earlier record for that key wholesale. The returned record
// includes the derived day-of-week when the caller omitted it.
func (s *AttendanceService) RecordAttendance(ctx context.Context, rec domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	l := slogx.FromContext(ctx)

	if err := s.validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return domain.AttendanceRecord{}, fmt.Errorf("%w: field %s failed on %s",
				ErrInvalidRecord, verrs[0].Field(), verrs[0].Tag())
		}
		return domain.AttendanceRecord{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	if rec.Day == "" {
		day, err := dayOfWeek(rec.Date)
		if err != nil {
			return domain.AttendanceRecord{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		rec.Day = day
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Attendance().UpsertRecord(ctx, rec); err != nil {
			return err
		}
		return tx.DailyRecords().UpsertRecord(ctx, rec.DailyView())
	})
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("%w: saving attendance: %v", ErrRemoteWrite, err)
	}

	l.Info("attendance recorded",
		slog.String("user_id", rec.UserID),
		slog.String("date", rec.Date),
		slog.String("status", rec.Status),
	)
	return rec, nil
}

// GetRecord reads one attendance record. store.ErrNotFound passes through.
func (s *AttendanceService) GetRecord(ctx context.Context, date, userID string) (domain.AttendanceRecord, error) {
	return s.Store.Attendance().GetRecord(ctx, date, userID)
}

// DailyReport returns the reporting mirror for a date, every user's row.
func (s *AttendanceService) DailyReport(ctx context.Context, date string) ([]domain.DailyRecord, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRecord)
	}
	recs, err := s.Store.DailyRecords().ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: reading daily records: %v", ErrRemoteRead, err)
	}
	return recs, nil
}

func dayOfWeek(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("date must be YYYY-MM-DD")
	}
	return t.Weekday().String(), nil
}
