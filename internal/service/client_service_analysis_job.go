package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// DefaultAnalysisInterval is used when Start gets a non-positive interval.
const DefaultAnalysisInterval = 60 * time.Second

type clientAnalysisJob struct {
	capture ClientCaptureService
	now     func() time.Time
	logger  *logger.Logger

	inFlight atomic.Bool

	mu       sync.Mutex
	cancel   context.CancelFunc
	trigger  chan struct{}
	interval time.Duration
	nextAt   time.Time
	lastErr  error
	wg       sync.WaitGroup
}

// NewClientAnalysisJob creates a job that calls capture.AnalyzePending on a
// ticker. The job is idle until Start is called.
func NewClientAnalysisJob(capture ClientCaptureService, logger *logger.Logger) ClientAnalysisJob {
	return &clientAnalysisJob{capture: capture, now: time.Now, logger: logger}
}

// Start implements ClientAnalysisJob. Ticks that arrive while a call is in
// flight are dropped.
func (j *clientAnalysisJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultAnalysisInterval
	}

	j.halt()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	trigger := make(chan struct{}, 1)
	j.cancel = cancel
	j.trigger = trigger
	j.interval = interval
	j.nextAt = j.now().Add(interval)
	j.lastErr = nil
	j.wg.Add(1)
	j.mu.Unlock()

	// in-flight calls outlive Stop's cancellation; Stop waits for them
	callCtx := context.WithoutCancel(ctx)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.attempt(callCtx)
			case <-trigger:
				t.Reset(interval)
				j.attempt(callCtx)
			}
		}
	}()
}

func (j *clientAnalysisJob) attempt(ctx context.Context) {
	if !j.inFlight.CompareAndSwap(false, true) {
		j.logger.Debug().Msg("analysis in flight, tick dropped")
		return
	}

	j.mu.Lock()
	j.nextAt = j.now().Add(j.interval)
	j.mu.Unlock()

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		defer j.inFlight.Store(false)

		err := j.capture.AnalyzePending(ctx)
		if err != nil {
			j.logger.Warn().Err(err).Msg("analysis attempt failed")
		}

		j.mu.Lock()
		j.lastErr = err
		j.mu.Unlock()
	}()
}

func (j *clientAnalysisJob) Countdown() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel == nil {
		return 0
	}
	if left := j.nextAt.Sub(j.now()); left > 0 {
		return left
	}
	return 0
}

// Trigger implements ClientAnalysisJob. It never blocks; repeated triggers
// before the loop picks one up collapse into one.
func (j *clientAnalysisJob) Trigger() {
	j.mu.Lock()
	trigger := j.trigger
	running := j.cancel != nil
	j.mu.Unlock()

	if !running {
		return
	}

	select {
	case trigger <- struct{}{}:
	default:
	}
}

func (j *clientAnalysisJob) InFlight() bool {
	return j.inFlight.Load()
}

func (j *clientAnalysisJob) LastError() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastErr
}

// Stop implements ClientAnalysisJob. No final analysis is made; whatever was
// not analyzed yet is still saved with the transcript.
func (j *clientAnalysisJob) Stop(ctx context.Context) error {
	j.halt()
	return j.capture.Close(ctx)
}

// halt cancels the ticker goroutine and blocks until it and any in-flight
// call have exited. Safe to call when the job is not running.
func (j *clientAnalysisJob) halt() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
