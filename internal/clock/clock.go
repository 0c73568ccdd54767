package clock

import "time"

type Clock interface {
	Now() time.Time
}

const Time24 = "15:04:05"
const Time12 = "03:04:05 PM"
const Date = "Monday, 02 January 2006"

type SystemClock struct{}

func NewSystemClock() Clock {
	return &SystemClock{}
}

func (r *SystemClock) Now() time.Time {
	return time.Now()
}
