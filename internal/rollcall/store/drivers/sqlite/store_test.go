package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/stratusworks/rollcall/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *sqlite.Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice@example.com")

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.False(t, got.CreatedAt.IsZero())

	byEmail, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "alice@example.com")

	dup := domain.User{
		ID:           idx.New().String(),
		Email:        "alice@example.com",
		PasswordHash: "x",
	}
	err := s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_DeleteCascadesRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice@example.com")
	require.NoError(t, s.UserRoles().SetRole(ctx, u.ID, domain.RoleEmployee))

	require.NoError(t, s.Users().DeleteUser(ctx, u.ID))

	_, err := s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UserRoles().GetRole(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserRoles_OverwriteWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice@example.com")

	require.NoError(t, s.UserRoles().SetRole(ctx, u.ID, domain.RoleEmployee))
	require.NoError(t, s.UserRoles().SetRole(ctx, u.ID, domain.RoleAdmin))

	role, err := s.UserRoles().GetRole(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, role)
}

func TestUserRoles_Missing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UserRoles().GetRole(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testRecord(userID, date string) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		UserID:       userID,
		Name:         "Test User",
		Date:         date,
		Day:          "Monday",
		CheckInTime:  "08:55",
		WorkingHours: "09:00-17:00",
		Attendance:   "Present",
		Status:       "On Time",
	}
}

func TestAttendance_UpsertOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("u1", "2026-08-31")
	require.NoError(t, s.Attendance().UpsertRecord(ctx, rec))

	// Same key again: late check-in replaces the on-time row wholesale.
	rec.CheckInTime = "09:20"
	rec.Status = "Late"
	require.NoError(t, s.Attendance().UpsertRecord(ctx, rec))

	got, err := s.Attendance().GetRecord(ctx, "2026-08-31", "u1")
	require.NoError(t, err)
	require.Equal(t, "09:20", got.CheckInTime)
	require.Equal(t, "Late", got.Status)

	rows, err := s.Attendance().ListByDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestAttendance_NilGeolocationStaysNil(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("u1", "2026-08-31")
	require.Nil(t, rec.Latitude)
	require.NoError(t, s.Attendance().UpsertRecord(ctx, rec))

	got, err := s.Attendance().GetRecord(ctx, "2026-08-31", "u1")
	require.NoError(t, err)
	require.Nil(t, got.Latitude)
	require.Nil(t, got.Longitude)

	// Coordinates that happen to be zero must round-trip as values, not NULL.
	zero := 0.0
	rec.Latitude = &zero
	rec.Longitude = &zero
	require.NoError(t, s.Attendance().UpsertRecord(ctx, rec))

	got, err = s.Attendance().GetRecord(ctx, "2026-08-31", "u1")
	require.NoError(t, err)
	require.NotNil(t, got.Latitude)
	require.Equal(t, 0.0, *got.Latitude)
}

func TestAttendance_ListDates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Attendance().UpsertRecord(ctx, testRecord("u1", "2026-08-30")))
	require.NoError(t, s.Attendance().UpsertRecord(ctx, testRecord("u1", "2026-08-31")))
	require.NoError(t, s.Attendance().UpsertRecord(ctx, testRecord("u2", "2026-08-31")))

	dates, err := s.Attendance().ListDates(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"2026-08-31", "2026-08-30"}, dates)
}

func TestDailyRecords_MissingForDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Attendance().UpsertRecord(ctx, testRecord("u1", "2026-08-31")))
	require.NoError(t, s.Attendance().UpsertRecord(ctx, testRecord("u2", "2026-08-31")))
	require.NoError(t, s.DailyRecords().UpsertRecord(ctx, testRecord("u1", "2026-08-31").DailyView()))

	missing, err := s.DailyRecords().MissingForDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, missing)

	require.NoError(t, s.DailyRecords().UpsertRecord(ctx, testRecord("u2", "2026-08-31").DailyView()))

	missing, err = s.DailyRecords().MissingForDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestSessions_RevokeIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice@example.com")

	sess := domain.Session{
		ID:        idx.New().String(),
		UserID:    u.ID,
		Role:      domain.RoleEmployee,
		ExpiresAt: time.Now().Add(12 * time.Hour).UTC(),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, sess))

	require.NoError(t, s.Sessions().RevokeSession(ctx, sess.ID))
	require.NoError(t, s.Sessions().RevokeSession(ctx, sess.ID)) // second call is a no-op
	require.NoError(t, s.Sessions().RevokeSession(ctx, "unknown"))

	got, err := s.Sessions().GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.True(t, got.Revoked)
}

func TestSessions_DeleteExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice@example.com")

	expired := domain.Session{
		ID:        idx.New().String(),
		UserID:    u.ID,
		Role:      domain.RoleEmployee,
		ExpiresAt: time.Now().Add(-time.Hour).UTC(),
	}
	live := domain.Session{
		ID:        idx.New().String(),
		UserID:    u.ID,
		Role:      domain.RoleEmployee,
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, expired))
	require.NoError(t, s.Sessions().CreateSession(ctx, live))

	require.NoError(t, s.Sessions().DeleteExpiredSessions(ctx))

	_, err := s.Sessions().GetSession(ctx, expired.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Sessions().GetSession(ctx, live.ID)
	require.NoError(t, err)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	errBoom := store.ErrAlreadyExists

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Attendance().UpsertRecord(ctx, testRecord("u1", "2026-08-31")); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = s.Attendance().GetRecord(ctx, "2026-08-31", "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTx_CommitsBothWrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("u1", "2026-08-31")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Attendance().UpsertRecord(ctx, rec); err != nil {
			return err
		}
		return tx.DailyRecords().UpsertRecord(ctx, rec.DailyView())
	})
	require.NoError(t, err)

	_, err = s.Attendance().GetRecord(ctx, "2026-08-31", "u1")
	require.NoError(t, err)

	_, err = s.DailyRecords().GetRecord(ctx, "2026-08-31", "u1")
	require.NoError(t, err)
}
