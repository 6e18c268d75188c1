package prometheus

import "time"

// SetClock replaces the clock used for run timestamps, for testing.
func (it *MetricsRepository) SetClock(now func() time.Time) {
	it.now = now
}
