package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks per-session counters, logged when the run loop ends.
type Metrics struct {
	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	// Input handling
	eventCount   atomic.Uint64
	keyCount     atomic.Uint64
	ignoredKeys  atomic.Uint64
	modeSwitches atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.renderMaxNs.Load()
		if ns <= old {
			break
		}
		if m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records one event taken from the backend.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// RecordKey records a key event and whether the active mode used it.
func (m *Metrics) RecordKey(consumed bool) {
	m.keyCount.Add(1)
	if !consumed {
		m.ignoredKeys.Add(1)
	}
}

// RecordModeSwitch records a mode transition.
func (m *Metrics) RecordModeSwitch() {
	m.modeSwitches.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	renderCount := m.renderCount.Load()

	var avgRender time.Duration
	if renderCount > 0 {
		avgRender = time.Duration(m.renderTotalNs.Load() / int64(renderCount))
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		RenderCount:  renderCount,
		AvgRender:    avgRender,
		MaxRender:    time.Duration(m.renderMaxNs.Load()),
		EventCount:   m.eventCount.Load(),
		KeyCount:     m.keyCount.Load(),
		IgnoredKeys:  m.ignoredKeys.Load(),
		ModeSwitches: m.modeSwitches.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	RenderCount  uint64
	AvgRender    time.Duration
	MaxRender    time.Duration
	EventCount   uint64
	KeyCount     uint64
	IgnoredKeys  uint64
	ModeSwitches uint64
}

// String formats the snapshot for a log line.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s frames=%d avg_render=%s max_render=%s events=%d keys=%d ignored=%d mode_switches=%d",
		s.Uptime.Round(time.Millisecond), s.RenderCount, s.AvgRender, s.MaxRender,
		s.EventCount, s.KeyCount, s.IgnoredKeys, s.ModeSwitches)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
