// Package scheduler triggers periodic mining runs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RunFunc executes one full mining pass. The scheduler owns the timeout.
type RunFunc func(ctx context.Context) error

// Scheduler manages scheduled mining jobs
type Scheduler struct {
	cron            *cron.Cron
	logger          *logrus.Logger
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
	jobTimeout      time.Duration
	gracefulTimeout time.Duration
}

// NewScheduler creates a new scheduler
func NewScheduler(logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		logger:          logger,
		jobIDs:          make([]cron.EntryID, 0),
		jobTimeout:      2 * time.Hour,
		gracefulTimeout: 30 * time.Second,
	}
}

// ScheduleMiningRun schedules a recurring mining pass
func (s *Scheduler) ScheduleMiningRun(cronExpression string, run RunFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
		defer cancel()

		s.logger.Info("Starting scheduled mining run")
		if err := run(ctx); err != nil {
			s.logger.WithField("error", err.Error()).Error("Scheduled mining run failed")
			return
		}
		s.logger.Info("Scheduled mining run completed")
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled mining job")

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(s.gracefulTimeout):
		s.logger.Warn("Scheduler stop timed out waiting for running jobs")
	}
	s.isRunning = false
	s.logger.Info("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			nextTime := entry.Next
			if nextRun.IsZero() || nextTime.Before(nextRun) {
				nextRun = nextTime
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}
