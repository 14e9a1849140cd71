package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/identity"
	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/pkg/httpx"
	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
	"github.com/stratusworks/rollcall/pkg/slogx"
)

// CheckInHandler serves PUT /v1/attendance/checkin.
type CheckInHandler struct {
	Provider          identity.Provider
	AttendanceService *service.AttendanceService
}

// ServeHTTP godoc
//
//	@Summary		Record a check-in
//	@Description	Writes the attendance record for (date, user) and its reporting mirror in one transaction, replacing any earlier record for the same date wholesale. The user and name come from the session, not the body.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		rollcallsdk.CheckInRequest	true	"date, check_in_time, working_hours, attendance, status, optional geolocation"
//	@Success		200		{object}	rollcallsdk.AttendanceResponse
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/attendance/checkin [put].
func (h *CheckInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Revocation check: the authn middleware only proves the signature.
	sess, acct, err := h.Provider.CurrentSession(ctx, bearerToken(r))
	if err != nil {
		rollcallsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req rollcallsdk.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	name := acct.DisplayName
	if name == "" {
		name = acct.Email
	}

	rec := domain.AttendanceRecord{
		UserID:       sess.UserID,
		Name:         name,
		Date:         req.Date,
		Day:          req.Day,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CheckInTime:  req.CheckInTime,
		WorkingHours: req.WorkingHours,
		Attendance:   req.Attendance,
		Status:       req.Status,
	}

	saved, err := h.AttendanceService.RecordAttendance(ctx, rec)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecord):
			rollcallsdk.NewAPIError(
				http.StatusBadRequest,
				rollcallsdk.ErrorCodeInvalidRecord,
				description(err),
			).WriteError(w)
		default:
			log.Error("check-in failed", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendanceResponse(saved))
}

// MyAttendanceHandler serves GET /v1/attendance/{date}/me.
type MyAttendanceHandler struct {
	Provider          identity.Provider
	AttendanceService *service.AttendanceService
}

// ServeHTTP godoc
//
//	@Summary		Read own attendance
//	@Description	Returns the session user's attendance record for a date.
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Date (YYYY-MM-DD)"
//	@Success		200		{object}	rollcallsdk.AttendanceResponse
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/attendance/{date}/me [get].
func (h *MyAttendanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, _, err := h.Provider.CurrentSession(ctx, bearerToken(r))
	if err != nil {
		rollcallsdk.ErrInvalidToken.WriteError(w)
		return
	}

	rec, err := h.AttendanceService.GetRecord(ctx, r.PathValue("date"), sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rollcallsdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("attendance read failed", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendanceResponse(rec))
}

// DailyReportHandler serves GET /v1/attendance/{date}.
type DailyReportHandler struct {
	Provider          identity.Provider
	AttendanceService *service.AttendanceService
	RoleService       *service.RoleService
}

// ServeHTTP godoc
//
//	@Summary		Daily attendance report
//	@Description	Returns every user's daily record for a date, read from the reporting mirror. The caller's admin role is re-checked against the role store, not just the session claim.
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Date (YYYY-MM-DD)"
//	@Success		200		{object}	rollcallsdk.DailyReportResponse
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/attendance/{date} [get].
func (h *DailyReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sess, _, err := h.Provider.CurrentSession(ctx, bearerToken(r))
	if err != nil {
		rollcallsdk.ErrInvalidToken.WriteError(w)
		return
	}

	// The session claim got us this far; the role store decides.
	role, err := h.RoleService.GetRole(ctx, sess.UserID)
	if err != nil {
		log.Error("role read failed", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}
	if role != domain.RoleAdmin {
		rollcallsdk.ErrInsufficientRole.WriteError(w)
		return
	}

	date := r.PathValue("date")
	recs, err := h.AttendanceService.DailyReport(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecord):
			rollcallsdk.NewAPIError(
				http.StatusBadRequest,
				rollcallsdk.ErrorCodeInvalidRecord,
				description(err),
			).WriteError(w)
		default:
			log.Error("daily report failed", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	out := rollcallsdk.DailyReportResponse{
		Date:    date,
		Records: make([]rollcallsdk.DailyRecordResponse, 0, len(recs)),
	}
	for _, rec := range recs {
		out.Records = append(out.Records, rollcallsdk.DailyRecordResponse{
			UserID:       rec.UserID,
			Name:         rec.Name,
			Date:         rec.Date,
			Day:          rec.Day,
			CheckInTime:  rec.CheckInTime,
			WorkingHours: rec.WorkingHours,
			Attendance:   rec.Attendance,
			Status:       rec.Status,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

func attendanceResponse(rec domain.AttendanceRecord) rollcallsdk.AttendanceResponse {
	return rollcallsdk.AttendanceResponse{
		UserID:       rec.UserID,
		Name:         rec.Name,
		Date:         rec.Date,
		Day:          rec.Day,
		Latitude:     rec.Latitude,
		Longitude:    rec.Longitude,
		CheckInTime:  rec.CheckInTime,
		WorkingHours: rec.WorkingHours,
		Attendance:   rec.Attendance,
		Status:       rec.Status,
	}
}
