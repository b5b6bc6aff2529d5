package engine

import (
	"testing"
	"time"
)

func TestMockClockAdvanceFiresInDeadlineOrder(t *testing.T) {
	start := time.Unix(0, 0)
	clock := NewMockClock(start)

	var order []string
	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "late") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "middle") })

	clock.Advance(25 * time.Millisecond)
	if len(order) != 2 || order[0] != "early" || order[1] != "middle" {
		t.Fatalf("Expected [early middle], got %v", order)
	}
	if got := clock.Now().Sub(start); got != 25*time.Millisecond {
		t.Errorf("Expected clock at +25ms, got +%v", got)
	}

	clock.Advance(5 * time.Millisecond)
	if len(order) != 3 || order[2] != "late" {
		t.Errorf("Expected late timer to fire at +30ms, got %v", order)
	}
}

func TestMockClockStop(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))

	fired := false
	timer := clock.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected Stop to report an armed timer")
	}
	if timer.Stop() {
		t.Error("Second Stop should return false")
	}

	clock.Advance(time.Second)
	if fired {
		t.Error("Stopped timer fired")
	}
	if clock.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", clock.Pending())
	}
}

func TestMockClockNowInsideCallback(t *testing.T) {
	start := time.Unix(0, 0)
	clock := NewMockClock(start)

	var seen time.Duration
	clock.AfterFunc(40*time.Millisecond, func() { seen = clock.Now().Sub(start) })
	clock.Advance(time.Second)

	if seen != 40*time.Millisecond {
		t.Errorf("Callback should observe its own deadline, got +%v", seen)
	}
}

func TestMockClockNestedTimerInsideWindow(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))

	count := 0
	clock.AfterFunc(10*time.Millisecond, func() {
		count++
		clock.AfterFunc(10*time.Millisecond, func() { count++ })
	})

	clock.Advance(25 * time.Millisecond)
	if count != 2 {
		t.Errorf("Expected nested timer to fire within window, count=%d", count)
	}
}
