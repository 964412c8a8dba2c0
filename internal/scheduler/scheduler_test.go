// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	logger := testLogger()

	s := New(logger, 0)
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cron == nil {
		t.Error("New() scheduler has nil cron")
	}
	if s.logger != logger {
		t.Error("New() scheduler has wrong logger")
	}
	if s.timeout != time.Minute {
		t.Errorf("timeout = %v, want %v", s.timeout, time.Minute)
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"* * * * *", false},
		{"*/15 * * * *", false},
		{"@hourly", false},
		{"@every 30m", false},
		{"", true},
		{"every minute", true},
		{"* * * *", true},
		{"@every soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateSchedule(tt.schedule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchedule(%q) error = %v, wantErr %v", tt.schedule, err, tt.wantErr)
			}
		})
	}
}

func TestScheduler_Register(t *testing.T) {
	s := New(testLogger(), time.Second)
	noop := func(context.Context) error { return nil }

	if err := s.Register("warm", "warm the cache", "@every 1h", noop); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := s.Register("warm", "again", "@every 1h", noop); err == nil {
		t.Error("Register() duplicate name: want error")
	}
	if err := s.Register("bad", "bad schedule", "never", noop); err == nil {
		t.Error("Register() invalid schedule: want error")
	}

	jobs := s.List()
	if len(jobs) != 1 {
		t.Fatalf("List() len = %d, want 1", len(jobs))
	}
	if jobs[0].Name != "warm" || jobs[0].Schedule != "@every 1h" {
		t.Errorf("List()[0] = %+v", jobs[0])
	}
}

func TestScheduler_TriggerNow(t *testing.T) {
	s := New(testLogger(), time.Second)

	var calls atomic.Int32
	var sawDeadline atomic.Bool
	err := s.Register("count", "", "@every 1h", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := s.TriggerNow("count"); err != nil {
		t.Fatalf("TriggerNow() error = %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
	if !sawDeadline.Load() {
		t.Error("job context has no deadline")
	}
	if err := s.TriggerNow("missing"); err == nil {
		t.Error("TriggerNow() unknown job: want error")
	}
}

func TestScheduler_TriggerNowRecordsLastRun(t *testing.T) {
	s := New(testLogger(), time.Second)
	if err := s.Register("warm", "", "@every 1h", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if got := s.List()[0]; !got.LastRun.IsZero() || got.LastDuration != "" {
		t.Errorf("before any run: LastRun = %v, LastDuration = %q, want zero", got.LastRun, got.LastDuration)
	}

	before := time.Now()
	if err := s.TriggerNow("warm"); err != nil {
		t.Fatalf("TriggerNow() error = %v", err)
	}

	got := s.List()[0]
	if got.LastRun.Before(before) {
		t.Errorf("LastRun = %v, want at or after %v", got.LastRun, before)
	}
	if got.LastDuration == "" {
		t.Error("LastDuration is empty after TriggerNow()")
	}
	if got.LastError != "" {
		t.Errorf("LastError = %q, want empty", got.LastError)
	}
}

func TestScheduler_RecordsLastError(t *testing.T) {
	s := New(testLogger(), time.Second)
	boom := errors.New("boom")

	if err := s.Register("fail", "", "@every 1h", func(context.Context) error { return boom }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := s.TriggerNow("fail"); !errors.Is(err, boom) {
		t.Errorf("TriggerNow() error = %v, want %v", err, boom)
	}
	if got := s.List()[0].LastError; got != "boom" {
		t.Errorf("LastError = %q, want %q", got, "boom")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(testLogger(), time.Second)

	var calls atomic.Int32
	err := s.Register("tick", "", "@every 1s", func(context.Context) error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	s.Start()
	if next := s.List()[0].NextRun; next.IsZero() {
		t.Error("NextRun is zero after Start()")
	}
	s.Stop()
}
