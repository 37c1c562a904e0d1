package tickdata

import (
	"iter"
	"time"
)

// hourRange yields the hour-aligned instants in [start, end) in order.
// The sequence is recomputed on every range-over, so it is restartable.
func hourRange(start, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for hour := start; hour.Before(end); hour = hour.Add(time.Hour) {
			if !yield(hour) {
				return
			}
		}
	}
}
