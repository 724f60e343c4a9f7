package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	assert.NoError(t, err)
	return d
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		begin time.Time
		end   time.Time
		want  int
	}{
		{name: "nine days", begin: date(t, "2024-01-01"), end: date(t, "2024-01-10"), want: 9},
		{name: "same instant", begin: date(t, "2024-03-05"), end: date(t, "2024-03-05"), want: 0},
		{name: "leap year february", begin: date(t, "2024-02-01"), end: date(t, "2024-03-01"), want: 29},
		{name: "rounds down under half a day", begin: date(t, "2024-01-01"), end: date(t, "2024-01-02").Add(11 * time.Hour), want: 1},
		{name: "rounds up from half a day", begin: date(t, "2024-01-01"), end: date(t, "2024-01-02").Add(12 * time.Hour), want: 2},
		{name: "whole year", begin: date(t, "2023-01-01"), end: date(t, "2024-01-01"), want: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.begin, tt.end))
			assert.Equal(t, tt.want, DaysBetween(tt.end, tt.begin), "must be commutative")
		})
	}
}

func TestDaysBetween_IgnoresDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2024-03-10 is 23 hours long in New York; 23h rounds to one day.
	begin := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(begin, end))
	assert.Equal(t, 23*time.Hour, end.Sub(begin))
}
