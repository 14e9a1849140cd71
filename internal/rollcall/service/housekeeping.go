package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/store"
)

// HousekeepingService periodically deletes expired sessions and repairs
// attendance records whose reporting mirror is missing. With the dual-write
// transaction a gap only appears after out-of-band writes, so this is
// monitoring plus self-healing rather than a load-bearing path.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker. Blocks until any
// in-progress pass finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once immediately on startup
	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single housekeeping pass. Each task is independent;
// a failure in one does not stop the others.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	if err := s.Store.Sessions().DeleteExpiredSessions(ctx); err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
	} else {
		s.Logger.Debug("deleted expired sessions")
	}

	repaired, err := s.reconcileDailyRecords(ctx)
	if err != nil {
		s.Logger.Error("failed to reconcile daily records", "error", err)
	} else if repaired > 0 {
		s.Logger.Warn("repaired missing daily records", "count", repaired)
	}
}

// reconcileDailyRecords backfills daily_records rows for attendance entries
// that lost their mirror, and returns how many it repaired.
func (s *HousekeepingService) reconcileDailyRecords(ctx context.Context) (int, error) {
	dates, err := s.Store.Attendance().ListDates(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, date := range dates {
		missing, err := s.Store.DailyRecords().MissingForDate(ctx, date)
		if err != nil {
			return repaired, err
		}

		for _, userID := range missing {
			rec, err := s.Store.Attendance().GetRecord(ctx, date, userID)
			if err != nil {
				return repaired, err
			}
			if err := s.Store.DailyRecords().UpsertRecord(ctx, rec.DailyView()); err != nil {
				return repaired, err
			}
			repaired++
		}
	}
	return repaired, nil
}
