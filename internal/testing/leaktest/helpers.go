// Package leaktest holds goroutine leak checks shared by concurrency tests
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	pollEvery   = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and compares
// against it later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines outlived the
// work since the snapshot. Goroutines get until the drain deadline to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(drainDelay * 4)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollEvery)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
