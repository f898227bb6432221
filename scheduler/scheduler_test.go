package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"seroter.com/ordersheet/model"
)

type countingRunner struct {
	calls atomic.Int32
	ran   chan struct{}
}

func (r *countingRunner) Run(ctx context.Context) (model.RunReport, error) {
	r.calls.Add(1)
	select {
	case r.ran <- struct{}{}:
	default:
	}
	return model.RunReport{}, nil
}

func TestNewRejectsBadSchedule(t *testing.T) {
	for _, spec := range []string{"", "every six hours", "0 */6 * *", "61 * * * *"} {
		if _, err := New(spec, &countingRunner{}); err == nil {
			t.Fatalf("expected error for schedule %q", spec)
		}
	}
}

func TestNewAcceptsDefaultSchedule(t *testing.T) {
	if _, err := New("0 */6 * * *", &countingRunner{}); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestStartRunsImmediately(t *testing.T) {
	r := &countingRunner{ran: make(chan struct{}, 1)}
	s, err := New("0 */6 * * *", r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case <-r.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("export did not run at start-up")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	if got := r.calls.Load(); got != 1 {
		t.Fatalf("expected exactly one run, got %d", got)
	}
}

func TestStartRunsOnTick(t *testing.T) {
	r := &countingRunner{ran: make(chan struct{}, 4)}
	s, err := New("@every 1s", r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	deadline := time.After(5 * time.Second)
	for i := 0; i < 2; i++ {
		select {
		case <-r.ran:
		case <-deadline:
			t.Fatalf("expected start-up run plus a tick, got %d runs", r.calls.Load())
		}
	}
}
