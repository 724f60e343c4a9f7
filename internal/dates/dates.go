// Package dates holds calendar-agnostic date arithmetic.
package dates

import (
	"math"
	"time"
)

// DayMillis is the fixed day length used by DaysBetween.
const DayMillis = 24 * 60 * 60 * 1000

// DaysBetween returns |end - begin| in whole days, rounded to the nearest day.
// A day is always 86,400,000 ms; DST shifts and leap seconds are ignored.
func DaysBetween(begin, end time.Time) int {
	diff := math.Abs(float64(end.UnixMilli() - begin.UnixMilli()))
	return int(math.Round(diff / DayMillis))
}
