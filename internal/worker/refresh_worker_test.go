package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"giveaway/internal/logger"
)

type stubRefresher struct {
	calls atomic.Int64
	err   error
}

func (s *stubRefresher) Refresh(ctx context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestRefreshWorkerTicks(t *testing.T) {
	stub := &stubRefresher{}
	w := NewRefreshWorker(stub, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for stub.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("worker never ticked")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}

func TestRefreshWorkerSurvivesErrors(t *testing.T) {
	stub := &stubRefresher{err: errors.New("network down")}
	w := NewRefreshWorker(stub, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for stub.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("worker stopped retrying after errors")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestNewRefreshWorkerDefaultInterval(t *testing.T) {
	w := NewRefreshWorker(&stubRefresher{}, 0, logger.Nop())
	if w.interval != 30*time.Second {
		t.Errorf("default interval = %v, want 30s", w.interval)
	}
}
