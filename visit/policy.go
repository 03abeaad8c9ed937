package visit

import "time"

// A Policy asserts whether a page view at now begins a new visit
// given the last visit began at last.
type Policy func(last, now time.Time) bool

var (
	_ Policy = CalendarDay
	_ Policy = Rolling(0)
)

// CalendarDay begins a new visit when now falls on a later date than last.
//
// Only dates are compared:
// 23:59 followed by 00:01 the next day is a new visit,
// while 00:01 followed by 23:59 the same day is not.
func CalendarDay(last, now time.Time) bool { return Days(last, now) > 0 }

// Rolling begins a new visit once window has elapsed since last.
func Rolling(window time.Duration) Policy {
	return func(last, now time.Time) bool { return now.Sub(last) >= window }
}

// Days counts the calendar days from the date of last to the date of now.
// Days is negative when last falls on a later date than now.
func Days(last, now time.Time) int {
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()

	// NOTE: midnight UTC on both dates keeps DST shifts out of the difference.
	from := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24)
}
