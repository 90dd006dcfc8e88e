// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
)

// spyWorker считает вызовы Run.
type spyWorker struct {
	calls atomic.Int64
	err   error
}

func (s *spyWorker) Run(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestJob_Start_RunsWorker(t *testing.T) {
	spy := &spyWorker{}
	job := NewJob(spy, logger.Nop())

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Run должен быть вызван несколько раз, вызвано: %d", got)
}

func TestJob_Start_KeepsRunningAfterFailure(t *testing.T) {
	spy := &spyWorker{err: errors.New("disk busy")}
	job := NewJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyWorker{}
	job := NewJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewJob(&spyWorker{}, logger.Nop())

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestJob_ContextCancelStopsLoop(t *testing.T) {
	spy := &spyWorker{}
	job := NewJob(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

func TestJob_Restart(t *testing.T) {
	spy := &spyWorker{}
	job := NewJob(spy, logger.Nop())

	// повторный Start останавливает предыдущий цикл
	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}
