package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerRunsLastTriggerOnly(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)

	var last, calls atomic.Int32
	for i := int32(1); i <= 5; i++ {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(i)
		})
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(120 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("expected the last callback to run, got #%d", got)
	}
}

func TestDebouncerCancelDropsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() { called.Store(true) })
	d.Cancel()
	d.Cancel()
	time.Sleep(80 * time.Millisecond)

	if called.Load() {
		t.Error("cancelled callback ran")
	}
}

func TestNewDebouncerDefaultsNonPositive(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		if got := NewDebouncer(d).Duration(); got != DefaultDebounceDuration {
			t.Errorf("NewDebouncer(%v).Duration() = %v, want %v", d, got, DefaultDebounceDuration)
		}
	}
}
