// Package metrics measures calculations: a monotonic stopwatch for the timed
// region, runtime memory snapshots, and Prometheus counters that can be
// exported as a textfile.
package metrics

import "time"

// Stopwatch measures wall-clock time between Start and Stop using the
// monotonic clock carried by time.Time.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
	now     func() time.Time
}

// NewStopwatch returns a stopped stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start records the start instant, discarding any previous measurement.
func (s *Stopwatch) Start() {
	s.elapsed = 0
	s.running = true
	s.start = s.now()
}

// Stop records the elapsed time since Start. Calling Stop on a stopped
// stopwatch has no effect.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed = s.now().Sub(s.start)
	s.running = false
}

// Elapsed returns the measured duration, or the running total if the
// stopwatch has not been stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.start)
	}
	return s.elapsed
}

// ElapsedMilliseconds returns Elapsed truncated to whole milliseconds.
func (s *Stopwatch) ElapsedMilliseconds() int64 {
	return s.Elapsed().Milliseconds()
}

// Time runs fn between Start and Stop and returns the elapsed duration.
func (s *Stopwatch) Time(fn func()) time.Duration {
	s.Start()
	fn()
	s.Stop()
	return s.elapsed
}
