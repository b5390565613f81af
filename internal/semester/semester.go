// Package semester derives the current academic semester from wall-clock
// time. The upstream API reports timestamps in epoch milliseconds, so the
// window bounds use the same unit.
package semester

import (
	"fmt"
	"time"
)

// Label returns the semester tag for the given instant: "2026.1" for
// January through June, "2026.2" for July through December.
func Label(now time.Time) string {
	if now.Month() <= time.June {
		return fmt.Sprintf("%d.1", now.Year())
	}
	return fmt.Sprintf("%d.2", now.Year())
}

// Bounds returns the inclusive start and end of the current semester in
// epoch milliseconds, evaluated in now's location. The first semester runs
// Jan 1 00:00:00 through Jun 30 23:59:59, the second Jul 1 00:00:00
// through Dec 31 23:59:59.
func Bounds(now time.Time) (startMs, endMs int64) {
	year := now.Year()
	loc := now.Location()

	var start, end time.Time
	if now.Month() <= time.June {
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, time.June, 30, 23, 59, 59, 0, loc)
	} else {
		start = time.Date(year, time.July, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, time.December, 31, 23, 59, 59, 0, loc)
	}

	return start.UnixMilli(), end.UnixMilli()
}
