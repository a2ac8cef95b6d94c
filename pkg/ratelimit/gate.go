// Package ratelimit implements the single-slot pacing gate that serializes
// outbound Scryfall requests. Scryfall asks clients to insert a small delay
// between requests; the gate enforces that delay globally across all
// concurrent fetch operations of a client.
package ratelimit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for gate operations.
var (
	gateAcquisitionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scryfall_gate_acquisitions_total",
		Help: "Total number of successful pacing gate acquisitions",
	})

	gateWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scryfall_gate_wait_seconds",
		Help:    "Time spent waiting for the pacing gate, including the pacing delay",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
)

// DefaultDelay is the pacing delay between outbound requests when none is
// configured.
const DefaultDelay = 100 * time.Millisecond

// Gate is a single-slot mutual exclusion gate with a fixed pacing delay.
//
// At most one request may be "in flight + pacing" at a time regardless of how
// many fetch operations are pending; each acquisition sleeps the delay before
// returning, so the delay is paid per request, not per batch. Waiters
// contending for the slot are woken in the runtime's channel wakeup order,
// which is approximately FIFO but not guaranteed.
type Gate struct {
	slot   chan struct{}
	delay  time.Duration
	logger zerolog.Logger
}

// NewGate creates a gate with the given pacing delay. A non-positive delay
// falls back to DefaultDelay.
func NewGate(delay time.Duration, logger zerolog.Logger) *Gate {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Gate{
		slot:   make(chan struct{}, 1),
		delay:  delay,
		logger: logger,
	}
}

// Delay returns the configured pacing delay.
func (g *Gate) Delay() time.Duration {
	return g.delay
}

// Acquire blocks until the gate slot is free, then waits the pacing delay.
// It returns the context error if ctx is cancelled during either phase; the
// slot is released on that path and no Release call is expected.
func (g *Gate) Acquire(ctx context.Context) error {
	start := time.Now()

	select {
	case g.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		<-g.slot
		return ctx.Err()
	}

	waited := time.Since(start)
	gateAcquisitionsTotal.Inc()
	gateWaitSeconds.Observe(waited.Seconds())

	g.logger.Debug().
		Dur("waited", waited).
		Msg("Pacing gate acquired")

	return nil
}

// Release frees the gate slot. It must be called exactly once after each
// successful Acquire, once the request has completed.
func (g *Gate) Release() {
	<-g.slot
}
