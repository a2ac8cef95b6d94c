package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewGate_DefaultDelay(t *testing.T) {
	tests := []struct {
		name     string
		delay    time.Duration
		expected time.Duration
	}{
		{name: "explicit delay", delay: 50 * time.Millisecond, expected: 50 * time.Millisecond},
		{name: "zero delay falls back", delay: 0, expected: DefaultDelay},
		{name: "negative delay falls back", delay: -time.Second, expected: DefaultDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate(tt.delay, zerolog.Nop())
			if gate.Delay() != tt.expected {
				t.Errorf("Delay() = %v, want %v", gate.Delay(), tt.expected)
			}
		})
	}
}

func TestGate_AcquireRelease(t *testing.T) {
	gate := NewGate(10*time.Millisecond, zerolog.Nop())

	if err := gate.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	gate.Release()

	// Slot must be free again.
	if err := gate.Acquire(context.Background()); err != nil {
		t.Fatalf("Second Acquire() failed: %v", err)
	}
	gate.Release()
}

func TestGate_SerializesConcurrentAcquisitions(t *testing.T) {
	const (
		delay   = 20 * time.Millisecond
		workers = 5
	)
	gate := NewGate(delay, zerolog.Nop())

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := gate.Acquire(context.Background()); err != nil {
				t.Errorf("Acquire() failed: %v", err)
				return
			}
			gate.Release()
		}()
	}
	wg.Wait()

	// K concurrent acquisitions must take at least K * delay in total:
	// serialization is enforced, not merely advisory.
	elapsed := time.Since(start)
	if minimum := time.Duration(workers) * delay; elapsed < minimum {
		t.Errorf("Elapsed = %v, want >= %v", elapsed, minimum)
	}
}

func TestGate_AcquireCancelledWhileWaitingForSlot(t *testing.T) {
	gate := NewGate(10*time.Millisecond, zerolog.Nop())

	// Hold the slot so the second acquire blocks.
	if err := gate.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := gate.Acquire(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Acquire() error = %v, want %v", err, context.DeadlineExceeded)
	}

	gate.Release()
}

func TestGate_AcquireCancelledDuringPacingDelay(t *testing.T) {
	gate := NewGate(500*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := gate.Acquire(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Acquire() error = %v, want %v", err, context.DeadlineExceeded)
	}

	// The cancelled acquire must have released the slot itself.
	if err := gate.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() after cancellation failed: %v", err)
	}
	gate.Release()
}
