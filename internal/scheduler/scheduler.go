// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic background jobs such as cache warming.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

// registeredJob holds metadata about a registered cron job.
type registeredJob struct {
	name        string
	description string
	schedule    string
	entryID     cron.EntryID
	fn          JobFunc

	// guarded by Scheduler.mu
	lastRun      time.Time
	lastDuration time.Duration
	lastErr      error
}

// JobInfo is the public view of a registered job. LastRun covers both
// scheduled runs and TriggerNow.
type JobInfo struct {
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Schedule     string    `json:"schedule"`
	LastRun      time.Time `json:"last_run,omitzero"`
	LastDuration string    `json:"last_duration,omitempty"`
	NextRun      time.Time `json:"next_run,omitzero"`
	LastError    string    `json:"last_error,omitempty"`
}

// Scheduler wraps a cron instance and the jobs registered on it.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration

	mu   sync.RWMutex
	jobs map[string]*registeredJob
}

// New creates a new scheduler. Each job run gets timeout as deadline.
func New(logger *slog.Logger, timeout time.Duration) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:    cron.New(),
		logger:  logger,
		timeout: timeout,
		jobs:    make(map[string]*registeredJob),
	}
}

// ValidateSchedule checks a standard 5-field cron expression or a
// descriptor such as "@hourly" or "@every 30m".
func ValidateSchedule(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	return nil
}

// Register adds a job under a unique name.
func (s *Scheduler) Register(name, description, schedule string, fn JobFunc) error {
	if err := ValidateSchedule(schedule); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	job := &registeredJob{name: name, description: description, schedule: schedule, fn: fn}
	id, err := s.cron.AddFunc(schedule, func() { s.run(job) })
	if err != nil {
		return fmt.Errorf("adding job %q: %w", name, err)
	}
	job.entryID = id
	s.jobs[name] = job
	return nil
}

// Start begins running registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// TriggerNow runs a job synchronously outside its schedule.
func (s *Scheduler) TriggerNow(name string) error {
	s.mu.RLock()
	job, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("job %q not found", name)
	}
	return s.run(job)
}

// List returns every registered job sorted by name.
func (s *Scheduler) List() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]JobInfo, 0, len(s.jobs))
	for _, job := range s.jobs {
		info := JobInfo{
			Name:        job.name,
			Description: job.description,
			Schedule:    job.schedule,
			LastRun:     job.lastRun,
			NextRun:     s.cron.Entry(job.entryID).Next,
		}
		if !job.lastRun.IsZero() {
			info.LastDuration = job.lastDuration.Round(time.Millisecond).String()
		}
		if job.lastErr != nil {
			info.LastError = job.lastErr.Error()
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Scheduler) run(job *registeredJob) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	err := job.fn(ctx)
	elapsed := time.Since(start)

	s.mu.Lock()
	job.lastRun = start
	job.lastDuration = elapsed
	job.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("scheduled job failed", "job", job.name, "error", err)
		return err
	}
	s.logger.Debug("scheduled job finished", "job", job.name, "duration", elapsed)
	return nil
}
