package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// fakeClock returns successive instants from a fixed list.
func fakeClock(instants ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := instants[i]
		if i < len(instants)-1 {
			i++
		}
		return t
	}
}

func TestStopwatch_ElapsedMilliseconds(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		elapsed time.Duration
		wantMS  int64
	}{
		{"Sub-millisecond truncates to zero", 999 * time.Microsecond, 0},
		{"Truncates rather than rounds", 1999 * time.Microsecond, 1},
		{"Whole seconds", 3 * time.Second, 3000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sw := NewStopwatch()
			sw.now = fakeClock(base, base.Add(tt.elapsed))
			sw.Start()
			sw.Stop()
			if got := sw.ElapsedMilliseconds(); got != tt.wantMS {
				t.Errorf("ElapsedMilliseconds() = %d, want %d", got, tt.wantMS)
			}
			if got := sw.Elapsed(); got != tt.elapsed {
				t.Errorf("Elapsed() = %s, want %s", got, tt.elapsed)
			}
		})
	}
}

func TestStopwatch_StopWithoutStart(t *testing.T) {
	t.Parallel()
	sw := NewStopwatch()
	sw.Stop()
	if sw.Elapsed() != 0 {
		t.Errorf("Elapsed() = %s, want 0", sw.Elapsed())
	}
}

func TestStopwatch_Time(t *testing.T) {
	t.Parallel()
	sw := NewStopwatch()
	called := false
	d := sw.Time(func() {
		called = true
		time.Sleep(2 * time.Millisecond)
	})
	if !called {
		t.Fatal("Time should invoke fn")
	}
	if d < 2*time.Millisecond || d != sw.Elapsed() {
		t.Errorf("Time() = %s, Elapsed() = %s", d, sw.Elapsed())
	}
}

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()
	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 || snap.Sys == 0 {
		t.Errorf("expected non-zero heap and sys, got %+v", snap)
	}
	if snap.NumGoroutine < 1 {
		t.Errorf("NumGoroutine = %d, want >= 1", snap.NumGoroutine)
	}
}

func TestRecorder_Observe(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveCalculation("naive", 10, 3*time.Millisecond, nil)
	r.ObserveCalculation("naive", 12, time.Millisecond, nil)
	r.ObserveCalculation("checked", 47, time.Second, errors.New("integer overflow"))
	r.ObserveRejected("naive", 41)

	if got := testutil.ToFloat64(r.calculations.WithLabelValues("naive", StatusSuccess)); got != 2 {
		t.Errorf("naive success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.calculations.WithLabelValues("checked", StatusFailure)); got != 1 {
		t.Errorf("checked failure = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.calculations.WithLabelValues("naive", StatusRejected)); got != 1 {
		t.Errorf("naive rejected = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.lastN); got != 41 {
		t.Errorf("last n = %v, want 41", got)
	}
	if count := testutil.CollectAndCount(r.duration); count != 2 {
		t.Errorf("duration series = %d, want 2", count)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveCalculation("naive", 30, 5*time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "fibtime.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	body := string(data)
	for _, want := range []string{
		`fibtime_calculations_total{algorithm="naive",status="success"} 1`,
		"fibtime_calculation_duration_seconds_bucket",
		"fibtime_last_n 30",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("textfile should contain %q, got:\n%s", want, body)
		}
	}
}
