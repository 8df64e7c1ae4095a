package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestSteppedTimeProvider(t *testing.T) {
	tp := NewSteppedTimeProvider(testEpoch, 16*time.Millisecond)

	if !tp.Now().Equal(testEpoch) {
		t.Errorf("Expected %v, got %v", testEpoch, tp.Now())
	}

	if got := tp.Step(); !got.Equal(testEpoch.Add(16 * time.Millisecond)) {
		t.Errorf("Expected one step, got %v", got.Sub(testEpoch))
	}

	tp.Advance(time.Second)
	if got := tp.Now().Sub(testEpoch); got != time.Second+16*time.Millisecond {
		t.Errorf("Expected 1.016s, got %v", got)
	}

	later := testEpoch.Add(time.Hour)
	tp.Set(later)
	if !tp.Now().Equal(later) {
		t.Errorf("Expected %v after Set, got %v", later, tp.Now())
	}
}

func TestPausableClockFreezesGameTime(t *testing.T) {
	tp := NewSteppedTimeProvider(testEpoch, 0)
	clock := NewPausableClock(tp)

	tp.Advance(100 * time.Millisecond)
	clock.Pause()
	frozen := clock.Now()

	tp.Advance(5 * time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected game time frozen at %v, got %v", frozen, clock.Now())
	}
	if !clock.IsPaused() {
		t.Error("Expected paused")
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s ongoing pause, got %v", got)
	}

	clock.Resume()
	tp.Advance(50 * time.Millisecond)
	if got := clock.Now().Sub(frozen); got != 50*time.Millisecond {
		t.Errorf("Expected 50ms game time after resume, got %v", got)
	}
	if !clock.RealTime().Equal(tp.Now()) {
		t.Error("Expected RealTime to ignore pauses")
	}

	// Repeated pause/resume calls are no-ops
	clock.Resume()
	clock.Pause()
	clock.Pause()
	tp.Advance(time.Second)
	clock.Resume()
	if got := clock.TotalPauseDuration(); got != 6*time.Second {
		t.Errorf("Expected 6s total pause, got %v", got)
	}
}
