package service_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/pkg/idx"

	"github.com/stretchr/testify/require"
)

func TestHousekeeping_RepairsMissingDailyRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// An out-of-band attendance write with no reporting mirror.
	require.NoError(t, env.store.Attendance().UpsertRecord(ctx, checkIn("u1", "2026-08-31")))

	_, err := env.store.DailyRecords().GetRecord(ctx, "2026-08-31", "u1")
	require.ErrorIs(t, err, store.ErrNotFound)

	hk := service.NewHousekeepingService(env.store, slog.Default(), time.Hour)
	hk.RunOnce(ctx)

	mirror, err := env.store.DailyRecords().GetRecord(ctx, "2026-08-31", "u1")
	require.NoError(t, err)
	require.Equal(t, "On Time", mirror.Status)
}

func TestHousekeeping_DeletesExpiredSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee))
	u, err := env.store.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	expired := domain.Session{
		ID:        idx.New().String(),
		UserID:    u.ID,
		Role:      domain.RoleEmployee,
		ExpiresAt: time.Now().Add(-time.Hour).UTC(),
	}
	require.NoError(t, env.store.Sessions().CreateSession(ctx, expired))

	hk := service.NewHousekeepingService(env.store, slog.Default(), time.Hour)
	hk.RunOnce(ctx)

	_, err = env.store.Sessions().GetSession(ctx, expired.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHousekeeping_StartStop(t *testing.T) {
	env := newTestEnv(t)

	hk := service.NewHousekeepingService(env.store, slog.Default(), 10*time.Millisecond)
	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}
