package domain

import "time"

// AttendanceRecord is one user's attendance entry for one calendar date.
// The natural key is (Date, UserID): a second check-in on the same date
// replaces the record wholesale rather than appending.
type AttendanceRecord struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name"    validate:"required"`

	// Date in ISO form (2006-01-02) and its human day-of-week label.
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Day  string `json:"day"`

	// Geolocation is optional. nil means "not captured", which must remain
	// distinguishable from coordinates that happen to be zero.
	Latitude  *float64 `json:"latitude,omitempty"  validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`

	CheckInTime  string `json:"check_in_time" validate:"required"`
	WorkingHours string `json:"working_hours" validate:"required"`
	Attendance   string `json:"attendance"    validate:"required"`
	Status       string `json:"status"        validate:"required"`

	CreatedAt time.Time `json:"created_at" validate:"-"`
	UpdatedAt time.Time `json:"updated_at" validate:"-"`
}

// DailyRecord mirrors an AttendanceRecord under the reporting namespace,
// keyed the same way but without geolocation.
type DailyRecord struct {
	UserID       string
	Name         string
	Date         string
	Day          string
	CheckInTime  string
	WorkingHours string
	Attendance   string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DailyView projects an attendance record into its reporting mirror.
func (r AttendanceRecord) DailyView() DailyRecord {
	return DailyRecord{
		UserID:       r.UserID,
		Name:         r.Name,
		Date:         r.Date,
		Day:          r.Day,
		CheckInTime:  r.CheckInTime,
		WorkingHours: r.WorkingHours,
		Attendance:   r.Attendance,
		Status:       r.Status,
	}
}
