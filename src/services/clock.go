package services

import "time"

// Clock yields the current calendar date in the library's time zone.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	return NewClockFunc(time.Now, loc)
}

func NewClockFunc(now func() time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{now: now, loc: loc}
}

// Today is the local calendar date, stored as UTC midnight like every date column.
func (c Clock) Today() time.Time {
	return dateOnly(c.now().In(c.loc))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
