package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecordStats(t *testing.T) {
	m := newTimingMetric("test")
	m.Record(2 * time.Millisecond)
	m.Record(4 * time.Millisecond)

	s := m.Stats()
	if s.Count != 2 {
		t.Errorf("Expected count 2, got %d", s.Count)
	}
	if s.MinMs != 2 || s.MaxMs != 4 || s.AvgMs != 3 || s.TotalMs != 6 {
		t.Errorf("Unexpected stats %+v", s)
	}

	m.Reset()
	if m.Count() != 0 || m.Stats().MaxMs != 0 {
		t.Errorf("Expected reset metric, got %+v", m.Stats())
	}
}

func TestRecordConcurrent(t *testing.T) {
	m := newTimingMetric("concurrent")
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Record(time.Duration(i) * time.Microsecond)
		}(i)
	}
	wg.Wait()

	s := m.Stats()
	if s.Count != 50 {
		t.Errorf("Expected 50 records, got %d", s.Count)
	}
	if s.MinMs != 0.001 || s.MaxMs != 0.05 {
		t.Errorf("Unexpected min/max %v/%v", s.MinMs, s.MaxMs)
	}
}

func TestDisabled(t *testing.T) {
	SetEnabled(false)
	t.Cleanup(func() { SetEnabled(true) })

	m := newTimingMetric("off")
	Timer(m)()
	m.Record(time.Millisecond)
	if m.Count() != 0 {
		t.Errorf("Expected no records while disabled, got %d", m.Count())
	}
}

func TestTimerWithCallback(t *testing.T) {
	SetEnabled(true)
	m := newTimingMetric("cb")

	var got time.Duration
	TimerWithCallback(m, func(d time.Duration) { got = d })()
	if m.Count() != 1 {
		t.Errorf("Expected one record, got %d", m.Count())
	}
	if got <= 0 {
		t.Errorf("Expected positive duration, got %v", got)
	}
}

func TestAllTimingStatsSkipsEmpty(t *testing.T) {
	SetEnabled(true)
	ResetAll()
	t.Cleanup(ResetAll)

	ExportJSON.Record(time.Millisecond)
	stats := AllTimingStats()
	if len(stats) != 1 || stats[0].Name != "export_json" {
		t.Errorf("Expected only export_json, got %+v", stats)
	}
	if ByName("export_json") != ExportJSON || ByName("nope") != nil {
		t.Error("ByName lookup mismatch")
	}
}
